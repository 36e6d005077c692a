package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/asharhb/document-processor/constants"
	"github.com/asharhb/document-processor/db/ent/schema/utils"
)

type Batch struct {
	ent.Schema
}

func (Batch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batches"},
	}
}

func (Batch) Fields() []ent.Field {
	return []ent.Field{
		// human-inspectable token, e.g. batch_6f1a0c9d2b8e4f13a7c5
		field.String("id").NotEmpty().Immutable().StorageKey("id"),
		field.String("status").
			Default(string(constants.BatchStatusPending)).
			Validate(utils.EnumValidator(constants.BatchStatuses...)),
		field.Int("total").NonNegative(),
		// member ids in submission order; membership itself lives on documents.batch_id
		field.JSON("members", []string{}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Batch) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE batch -> MANY documents
		edge.To("documents", Document.Type),
	}
}

func (Batch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
