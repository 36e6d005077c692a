// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/asharhb/document-processor/gen/ent/batch"
	"github.com/asharhb/document-processor/gen/ent/document"
	"github.com/asharhb/document-processor/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBatch    = "Batch"
	TypeDocument = "Document"
)

// BatchMutation represents an operation that mutates the Batch nodes in the graph.
type BatchMutation struct {
	config
	op               Op
	typ              string
	id               *string
	status           *string
	total            *int
	addtotal         *int
	members          *[]string
	appendmembers    []string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	documents        map[uuid.UUID]struct{}
	removeddocuments map[uuid.UUID]struct{}
	cleareddocuments bool
	done             bool
	oldValue         func(context.Context) (*Batch, error)
	predicates       []predicate.Batch
}

var _ ent.Mutation = (*BatchMutation)(nil)

// batchOption allows management of the mutation configuration using functional options.
type batchOption func(*BatchMutation)

// newBatchMutation creates new mutation for the Batch entity.
func newBatchMutation(c config, op Op, opts ...batchOption) *BatchMutation {
	m := &BatchMutation{
		config:        c,
		op:            op,
		typ:           TypeBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchID sets the ID field of the mutation.
func withBatchID(id string) batchOption {
	return func(m *BatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Batch
		)
		m.oldValue = func(ctx context.Context) (*Batch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Batch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatch sets the old Batch of the mutation.
func withBatch(node *Batch) batchOption {
	return func(m *BatchMutation) {
		m.oldValue = func(context.Context) (*Batch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Batch entities.
func (m *BatchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Batch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *BatchMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BatchMutation) ResetStatus() {
	m.status = nil
}

// SetTotal sets the "total" field.
func (m *BatchMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *BatchMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *BatchMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *BatchMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *BatchMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetMembers sets the "members" field.
func (m *BatchMutation) SetMembers(s []string) {
	m.members = &s
	m.appendmembers = nil
}

// Members returns the value of the "members" field in the mutation.
func (m *BatchMutation) Members() (r []string, exists bool) {
	v := m.members
	if v == nil {
		return
	}
	return *v, true
}

// OldMembers returns the old "members" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldMembers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMembers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMembers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMembers: %w", err)
	}
	return oldValue.Members, nil
}

// AppendMembers adds s to the "members" field.
func (m *BatchMutation) AppendMembers(s []string) {
	m.appendmembers = append(m.appendmembers, s...)
}

// AppendedMembers returns the list of values that were appended to the "members" field in this mutation.
func (m *BatchMutation) AppendedMembers() ([]string, bool) {
	if len(m.appendmembers) == 0 {
		return nil, false
	}
	return m.appendmembers, true
}

// ResetMembers resets all changes to the "members" field.
func (m *BatchMutation) ResetMembers() {
	m.members = nil
	m.appendmembers = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *BatchMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *BatchMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *BatchMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *BatchMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *BatchMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *BatchMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *BatchMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the BatchMutation builder.
func (m *BatchMutation) Where(ps ...predicate.Batch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Batch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Batch).
func (m *BatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.status != nil {
		fields = append(fields, batch.FieldStatus)
	}
	if m.total != nil {
		fields = append(fields, batch.FieldTotal)
	}
	if m.members != nil {
		fields = append(fields, batch.FieldMembers)
	}
	if m.created_at != nil {
		fields = append(fields, batch.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldStatus:
		return m.Status()
	case batch.FieldTotal:
		return m.Total()
	case batch.FieldMembers:
		return m.Members()
	case batch.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batch.FieldStatus:
		return m.OldStatus(ctx)
	case batch.FieldTotal:
		return m.OldTotal(ctx)
	case batch.FieldMembers:
		return m.OldMembers(ctx)
	case batch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Batch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batch.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batch.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case batch.FieldMembers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMembers(v)
		return nil
	case batch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchMutation) AddedFields() []string {
	var fields []string
	if m.addtotal != nil {
		fields = append(fields, batch.FieldTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldTotal:
		return m.AddedTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batch.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	}
	return fmt.Errorf("unknown Batch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Batch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchMutation) ResetField(name string) error {
	switch name {
	case batch.FieldStatus:
		m.ResetStatus()
		return nil
	case batch.FieldTotal:
		m.ResetTotal()
		return nil
	case batch.FieldMembers:
		m.ResetMembers()
		return nil
	case batch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.documents != nil {
		edges = append(edges, batch.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batch.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddocuments != nil {
		edges = append(edges, batch.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case batch.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocuments {
		edges = append(edges, batch.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchMutation) EdgeCleared(name string) bool {
	switch name {
	case batch.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Batch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchMutation) ResetEdge(name string) error {
	switch name {
	case batch.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown Batch edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	filename               *string
	file_ext               *string
	file_type              *string
	file_size              *int64
	addfile_size           *int64
	content_path           *string
	status                 *string
	failure_code           *string
	error_message          *string
	summary                *string
	structured_data        *json.RawMessage
	appendstructured_data  json.RawMessage
	category               *string
	financial_type         *string
	category_confidence    *float32
	addcategory_confidence *float32
	category_reasoning     *string
	created_at             *time.Time
	processed_at           *time.Time
	clearedFields          map[string]struct{}
	batch                  *string
	clearedbatch           bool
	done                   bool
	oldValue               func(context.Context) (*Document, error)
	predicates             []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileType sets the "file_type" field.
func (m *DocumentMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *DocumentMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ResetFileType resets all changes to the "file_type" field.
func (m *DocumentMutation) ResetFileType() {
	m.file_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetContentPath sets the "content_path" field.
func (m *DocumentMutation) SetContentPath(s string) {
	m.content_path = &s
}

// ContentPath returns the value of the "content_path" field in the mutation.
func (m *DocumentMutation) ContentPath() (r string, exists bool) {
	v := m.content_path
	if v == nil {
		return
	}
	return *v, true
}

// OldContentPath returns the old "content_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentPath: %w", err)
	}
	return oldValue.ContentPath, nil
}

// ClearContentPath clears the value of the "content_path" field.
func (m *DocumentMutation) ClearContentPath() {
	m.content_path = nil
	m.clearedFields[document.FieldContentPath] = struct{}{}
}

// ContentPathCleared returns if the "content_path" field was cleared in this mutation.
func (m *DocumentMutation) ContentPathCleared() bool {
	_, ok := m.clearedFields[document.FieldContentPath]
	return ok
}

// ResetContentPath resets all changes to the "content_path" field.
func (m *DocumentMutation) ResetContentPath() {
	m.content_path = nil
	delete(m.clearedFields, document.FieldContentPath)
}

// SetBatchID sets the "batch_id" field.
func (m *DocumentMutation) SetBatchID(s string) {
	m.batch = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *DocumentMutation) BatchID() (r string, exists bool) {
	v := m.batch
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldBatchID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ClearBatchID clears the value of the "batch_id" field.
func (m *DocumentMutation) ClearBatchID() {
	m.batch = nil
	m.clearedFields[document.FieldBatchID] = struct{}{}
}

// BatchIDCleared returns if the "batch_id" field was cleared in this mutation.
func (m *DocumentMutation) BatchIDCleared() bool {
	_, ok := m.clearedFields[document.FieldBatchID]
	return ok
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *DocumentMutation) ResetBatchID() {
	m.batch = nil
	delete(m.clearedFields, document.FieldBatchID)
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetFailureCode sets the "failure_code" field.
func (m *DocumentMutation) SetFailureCode(s string) {
	m.failure_code = &s
}

// FailureCode returns the value of the "failure_code" field in the mutation.
func (m *DocumentMutation) FailureCode() (r string, exists bool) {
	v := m.failure_code
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureCode returns the old "failure_code" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFailureCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureCode: %w", err)
	}
	return oldValue.FailureCode, nil
}

// ClearFailureCode clears the value of the "failure_code" field.
func (m *DocumentMutation) ClearFailureCode() {
	m.failure_code = nil
	m.clearedFields[document.FieldFailureCode] = struct{}{}
}

// FailureCodeCleared returns if the "failure_code" field was cleared in this mutation.
func (m *DocumentMutation) FailureCodeCleared() bool {
	_, ok := m.clearedFields[document.FieldFailureCode]
	return ok
}

// ResetFailureCode resets all changes to the "failure_code" field.
func (m *DocumentMutation) ResetFailureCode() {
	m.failure_code = nil
	delete(m.clearedFields, document.FieldFailureCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *DocumentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DocumentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DocumentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[document.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DocumentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[document.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DocumentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, document.FieldErrorMessage)
}

// SetSummary sets the "summary" field.
func (m *DocumentMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *DocumentMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *DocumentMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[document.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *DocumentMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[document.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *DocumentMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, document.FieldSummary)
}

// SetStructuredData sets the "structured_data" field.
func (m *DocumentMutation) SetStructuredData(jm json.RawMessage) {
	m.structured_data = &jm
	m.appendstructured_data = nil
}

// StructuredData returns the value of the "structured_data" field in the mutation.
func (m *DocumentMutation) StructuredData() (r json.RawMessage, exists bool) {
	v := m.structured_data
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredData returns the old "structured_data" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStructuredData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredData: %w", err)
	}
	return oldValue.StructuredData, nil
}

// AppendStructuredData adds jm to the "structured_data" field.
func (m *DocumentMutation) AppendStructuredData(jm json.RawMessage) {
	m.appendstructured_data = append(m.appendstructured_data, jm...)
}

// AppendedStructuredData returns the list of values that were appended to the "structured_data" field in this mutation.
func (m *DocumentMutation) AppendedStructuredData() (json.RawMessage, bool) {
	if len(m.appendstructured_data) == 0 {
		return nil, false
	}
	return m.appendstructured_data, true
}

// ClearStructuredData clears the value of the "structured_data" field.
func (m *DocumentMutation) ClearStructuredData() {
	m.structured_data = nil
	m.appendstructured_data = nil
	m.clearedFields[document.FieldStructuredData] = struct{}{}
}

// StructuredDataCleared returns if the "structured_data" field was cleared in this mutation.
func (m *DocumentMutation) StructuredDataCleared() bool {
	_, ok := m.clearedFields[document.FieldStructuredData]
	return ok
}

// ResetStructuredData resets all changes to the "structured_data" field.
func (m *DocumentMutation) ResetStructuredData() {
	m.structured_data = nil
	m.appendstructured_data = nil
	delete(m.clearedFields, document.FieldStructuredData)
}

// SetCategory sets the "category" field.
func (m *DocumentMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *DocumentMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *DocumentMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[document.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *DocumentMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[document.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *DocumentMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, document.FieldCategory)
}

// SetFinancialType sets the "financial_type" field.
func (m *DocumentMutation) SetFinancialType(s string) {
	m.financial_type = &s
}

// FinancialType returns the value of the "financial_type" field in the mutation.
func (m *DocumentMutation) FinancialType() (r string, exists bool) {
	v := m.financial_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFinancialType returns the old "financial_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFinancialType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinancialType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinancialType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinancialType: %w", err)
	}
	return oldValue.FinancialType, nil
}

// ClearFinancialType clears the value of the "financial_type" field.
func (m *DocumentMutation) ClearFinancialType() {
	m.financial_type = nil
	m.clearedFields[document.FieldFinancialType] = struct{}{}
}

// FinancialTypeCleared returns if the "financial_type" field was cleared in this mutation.
func (m *DocumentMutation) FinancialTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldFinancialType]
	return ok
}

// ResetFinancialType resets all changes to the "financial_type" field.
func (m *DocumentMutation) ResetFinancialType() {
	m.financial_type = nil
	delete(m.clearedFields, document.FieldFinancialType)
}

// SetCategoryConfidence sets the "category_confidence" field.
func (m *DocumentMutation) SetCategoryConfidence(f float32) {
	m.category_confidence = &f
	m.addcategory_confidence = nil
}

// CategoryConfidence returns the value of the "category_confidence" field in the mutation.
func (m *DocumentMutation) CategoryConfidence() (r float32, exists bool) {
	v := m.category_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryConfidence returns the old "category_confidence" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCategoryConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryConfidence: %w", err)
	}
	return oldValue.CategoryConfidence, nil
}

// AddCategoryConfidence adds f to the "category_confidence" field.
func (m *DocumentMutation) AddCategoryConfidence(f float32) {
	if m.addcategory_confidence != nil {
		*m.addcategory_confidence += f
	} else {
		m.addcategory_confidence = &f
	}
}

// AddedCategoryConfidence returns the value that was added to the "category_confidence" field in this mutation.
func (m *DocumentMutation) AddedCategoryConfidence() (r float32, exists bool) {
	v := m.addcategory_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearCategoryConfidence clears the value of the "category_confidence" field.
func (m *DocumentMutation) ClearCategoryConfidence() {
	m.category_confidence = nil
	m.addcategory_confidence = nil
	m.clearedFields[document.FieldCategoryConfidence] = struct{}{}
}

// CategoryConfidenceCleared returns if the "category_confidence" field was cleared in this mutation.
func (m *DocumentMutation) CategoryConfidenceCleared() bool {
	_, ok := m.clearedFields[document.FieldCategoryConfidence]
	return ok
}

// ResetCategoryConfidence resets all changes to the "category_confidence" field.
func (m *DocumentMutation) ResetCategoryConfidence() {
	m.category_confidence = nil
	m.addcategory_confidence = nil
	delete(m.clearedFields, document.FieldCategoryConfidence)
}

// SetCategoryReasoning sets the "category_reasoning" field.
func (m *DocumentMutation) SetCategoryReasoning(s string) {
	m.category_reasoning = &s
}

// CategoryReasoning returns the value of the "category_reasoning" field in the mutation.
func (m *DocumentMutation) CategoryReasoning() (r string, exists bool) {
	v := m.category_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryReasoning returns the old "category_reasoning" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCategoryReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryReasoning: %w", err)
	}
	return oldValue.CategoryReasoning, nil
}

// ClearCategoryReasoning clears the value of the "category_reasoning" field.
func (m *DocumentMutation) ClearCategoryReasoning() {
	m.category_reasoning = nil
	m.clearedFields[document.FieldCategoryReasoning] = struct{}{}
}

// CategoryReasoningCleared returns if the "category_reasoning" field was cleared in this mutation.
func (m *DocumentMutation) CategoryReasoningCleared() bool {
	_, ok := m.clearedFields[document.FieldCategoryReasoning]
	return ok
}

// ResetCategoryReasoning resets all changes to the "category_reasoning" field.
func (m *DocumentMutation) ResetCategoryReasoning() {
	m.category_reasoning = nil
	delete(m.clearedFields, document.FieldCategoryReasoning)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *DocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *DocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *DocumentMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[document.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *DocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, document.FieldProcessedAt)
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (m *DocumentMutation) ClearBatch() {
	m.clearedbatch = true
	m.clearedFields[document.FieldBatchID] = struct{}{}
}

// BatchCleared reports if the "batch" edge to the Batch entity was cleared.
func (m *DocumentMutation) BatchCleared() bool {
	return m.BatchIDCleared() || m.clearedbatch
}

// BatchIDs returns the "batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BatchID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) BatchIDs() (ids []string) {
	if id := m.batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBatch resets all changes to the "batch" edge.
func (m *DocumentMutation) ResetBatch() {
	m.batch = nil
	m.clearedbatch = false
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, document.FieldFileExt)
	}
	if m.file_type != nil {
		fields = append(fields, document.FieldFileType)
	}
	if m.file_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.content_path != nil {
		fields = append(fields, document.FieldContentPath)
	}
	if m.batch != nil {
		fields = append(fields, document.FieldBatchID)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.failure_code != nil {
		fields = append(fields, document.FieldFailureCode)
	}
	if m.error_message != nil {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.summary != nil {
		fields = append(fields, document.FieldSummary)
	}
	if m.structured_data != nil {
		fields = append(fields, document.FieldStructuredData)
	}
	if m.category != nil {
		fields = append(fields, document.FieldCategory)
	}
	if m.financial_type != nil {
		fields = append(fields, document.FieldFinancialType)
	}
	if m.category_confidence != nil {
		fields = append(fields, document.FieldCategoryConfidence)
	}
	if m.category_reasoning != nil {
		fields = append(fields, document.FieldCategoryReasoning)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, document.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFilename:
		return m.Filename()
	case document.FieldFileExt:
		return m.FileExt()
	case document.FieldFileType:
		return m.FileType()
	case document.FieldFileSize:
		return m.FileSize()
	case document.FieldContentPath:
		return m.ContentPath()
	case document.FieldBatchID:
		return m.BatchID()
	case document.FieldStatus:
		return m.Status()
	case document.FieldFailureCode:
		return m.FailureCode()
	case document.FieldErrorMessage:
		return m.ErrorMessage()
	case document.FieldSummary:
		return m.Summary()
	case document.FieldStructuredData:
		return m.StructuredData()
	case document.FieldCategory:
		return m.Category()
	case document.FieldFinancialType:
		return m.FinancialType()
	case document.FieldCategoryConfidence:
		return m.CategoryConfidence()
	case document.FieldCategoryReasoning:
		return m.CategoryReasoning()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldFileExt:
		return m.OldFileExt(ctx)
	case document.FieldFileType:
		return m.OldFileType(ctx)
	case document.FieldFileSize:
		return m.OldFileSize(ctx)
	case document.FieldContentPath:
		return m.OldContentPath(ctx)
	case document.FieldBatchID:
		return m.OldBatchID(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldFailureCode:
		return m.OldFailureCode(ctx)
	case document.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case document.FieldSummary:
		return m.OldSummary(ctx)
	case document.FieldStructuredData:
		return m.OldStructuredData(ctx)
	case document.FieldCategory:
		return m.OldCategory(ctx)
	case document.FieldFinancialType:
		return m.OldFinancialType(ctx)
	case document.FieldCategoryConfidence:
		return m.OldCategoryConfidence(ctx)
	case document.FieldCategoryReasoning:
		return m.OldCategoryReasoning(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case document.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case document.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case document.FieldContentPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentPath(v)
		return nil
	case document.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldFailureCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureCode(v)
		return nil
	case document.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case document.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case document.FieldStructuredData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredData(v)
		return nil
	case document.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case document.FieldFinancialType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinancialType(v)
		return nil
	case document.FieldCategoryConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryConfidence(v)
		return nil
	case document.FieldCategoryReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryReasoning(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.addcategory_confidence != nil {
		fields = append(fields, document.FieldCategoryConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFileSize:
		return m.AddedFileSize()
	case document.FieldCategoryConfidence:
		return m.AddedCategoryConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case document.FieldCategoryConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCategoryConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldContentPath) {
		fields = append(fields, document.FieldContentPath)
	}
	if m.FieldCleared(document.FieldBatchID) {
		fields = append(fields, document.FieldBatchID)
	}
	if m.FieldCleared(document.FieldFailureCode) {
		fields = append(fields, document.FieldFailureCode)
	}
	if m.FieldCleared(document.FieldErrorMessage) {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.FieldCleared(document.FieldSummary) {
		fields = append(fields, document.FieldSummary)
	}
	if m.FieldCleared(document.FieldStructuredData) {
		fields = append(fields, document.FieldStructuredData)
	}
	if m.FieldCleared(document.FieldCategory) {
		fields = append(fields, document.FieldCategory)
	}
	if m.FieldCleared(document.FieldFinancialType) {
		fields = append(fields, document.FieldFinancialType)
	}
	if m.FieldCleared(document.FieldCategoryConfidence) {
		fields = append(fields, document.FieldCategoryConfidence)
	}
	if m.FieldCleared(document.FieldCategoryReasoning) {
		fields = append(fields, document.FieldCategoryReasoning)
	}
	if m.FieldCleared(document.FieldProcessedAt) {
		fields = append(fields, document.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldContentPath:
		m.ClearContentPath()
		return nil
	case document.FieldBatchID:
		m.ClearBatchID()
		return nil
	case document.FieldFailureCode:
		m.ClearFailureCode()
		return nil
	case document.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case document.FieldSummary:
		m.ClearSummary()
		return nil
	case document.FieldStructuredData:
		m.ClearStructuredData()
		return nil
	case document.FieldCategory:
		m.ClearCategory()
		return nil
	case document.FieldFinancialType:
		m.ClearFinancialType()
		return nil
	case document.FieldCategoryConfidence:
		m.ClearCategoryConfidence()
		return nil
	case document.FieldCategoryReasoning:
		m.ClearCategoryReasoning()
		return nil
	case document.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldFileExt:
		m.ResetFileExt()
		return nil
	case document.FieldFileType:
		m.ResetFileType()
		return nil
	case document.FieldFileSize:
		m.ResetFileSize()
		return nil
	case document.FieldContentPath:
		m.ResetContentPath()
		return nil
	case document.FieldBatchID:
		m.ResetBatchID()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldFailureCode:
		m.ResetFailureCode()
		return nil
	case document.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case document.FieldSummary:
		m.ResetSummary()
		return nil
	case document.FieldStructuredData:
		m.ResetStructuredData()
		return nil
	case document.FieldCategory:
		m.ResetCategory()
		return nil
	case document.FieldFinancialType:
		m.ResetFinancialType()
		return nil
	case document.FieldCategoryConfidence:
		m.ResetCategoryConfidence()
		return nil
	case document.FieldCategoryReasoning:
		m.ResetCategoryReasoning()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.batch != nil {
		edges = append(edges, document.EdgeBatch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeBatch:
		if id := m.batch; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbatch {
		edges = append(edges, document.EdgeBatch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeBatch:
		return m.clearedbatch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeBatch:
		m.ClearBatch()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeBatch:
		m.ResetBatch()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}
