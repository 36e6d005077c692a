// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BatchesColumns holds the columns for the "batches" table.
	BatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "total", Type: field.TypeInt},
		{Name: "members", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BatchesTable holds the schema information for the "batches" table.
	BatchesTable = &schema.Table{
		Name:       "batches",
		Columns:    BatchesColumns,
		PrimaryKey: []*schema.Column{BatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batch_created_at",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[4]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "content_path", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "failure_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "structured_data", Type: field.TypeJSON, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "financial_type", Type: field.TypeString, Nullable: true},
		{Name: "category_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "category_reasoning", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "batch_id", Type: field.TypeString, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_batches_documents",
				Columns:    []*schema.Column{DocumentsColumns[17]},
				RefColumns: []*schema.Column{BatchesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6], DocumentsColumns[15]},
			},
			{
				Name:    "document_batch_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[17]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BatchesTable,
		DocumentsTable,
	}
)

func init() {
	BatchesTable.Annotation = &entsql.Annotation{
		Table: "batches",
	}
	DocumentsTable.ForeignKeys[0].RefTable = BatchesTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
}
