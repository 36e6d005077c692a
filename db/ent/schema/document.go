package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/asharhb/document-processor/constants"
	"github.com/asharhb/document-processor/db/ent/schema/utils"
)

type Document struct {
	ent.Schema
}

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.String("file_type").NotEmpty().
			Validate(utils.EnumValidator(constants.Formats...)),
		field.Int64("file_size").NonNegative(),
		// raw content reference, owned exclusively by this row until deletion
		field.String("content_path").Optional().Nillable(),
		// weak back-reference to the owning batch; cleared on batch deletion
		field.String("batch_id").Optional().Nillable(),
		field.String("status").
			Default(string(constants.DocumentStatusPending)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.String("failure_code").Optional().Nillable().
			Validate(utils.EnumValidator(constants.FailureCodes...)),
		field.String("error_message").Optional().Nillable(),
		// result fields, written together with status = COMPLETED
		field.String("summary").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("structured_data", json.RawMessage{}).
			Optional(),
		field.String("category").Optional().Nillable().
			Validate(utils.EnumValidator(constants.CategoryNames()...)),
		field.String("financial_type").Optional().Nillable().
			Validate(utils.EnumValidator(constants.FinancialTypes...)),
		field.Float32("category_confidence").Optional().Nillable(),
		field.String("category_reasoning").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("processed_at").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE batch (optional)
		edge.From("batch", Batch.Type).
			Ref("documents").
			Field("batch_id").
			Unique(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("batch_id"),
	}
}
