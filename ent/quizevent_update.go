// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docentlabs/docent/ent/predicate"
	"github.com/docentlabs/docent/ent/quizevent"
)

// QuizEventUpdate is the builder for updating QuizEvent entities.
type QuizEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizEventMutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdate) Where(ps ...predicate.QuizEvent) *QuizEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizEventUpdate) SetQuizID(v string) *QuizEventUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableQuizID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetRequested sets the "requested" field.
func (_u *QuizEventUpdate) SetRequested(v int) *QuizEventUpdate {
	_u.mutation.ResetRequested()
	_u.mutation.SetRequested(v)
	return _u
}

// SetNillableRequested sets the "requested" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableRequested(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetRequested(*v)
	}
	return _u
}

// AddRequested adds value to the "requested" field.
func (_u *QuizEventUpdate) AddRequested(v int) *QuizEventUpdate {
	_u.mutation.AddRequested(v)
	return _u
}

// SetKept sets the "kept" field.
func (_u *QuizEventUpdate) SetKept(v int) *QuizEventUpdate {
	_u.mutation.ResetKept()
	_u.mutation.SetKept(v)
	return _u
}

// SetNillableKept sets the "kept" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableKept(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetKept(*v)
	}
	return _u
}

// AddKept adds value to the "kept" field.
func (_u *QuizEventUpdate) AddKept(v int) *QuizEventUpdate {
	_u.mutation.AddKept(v)
	return _u
}

// SetDropped sets the "dropped" field.
func (_u *QuizEventUpdate) SetDropped(v int) *QuizEventUpdate {
	_u.mutation.ResetDropped()
	_u.mutation.SetDropped(v)
	return _u
}

// SetNillableDropped sets the "dropped" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableDropped(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetDropped(*v)
	}
	return _u
}

// AddDropped adds value to the "dropped" field.
func (_u *QuizEventUpdate) AddDropped(v int) *QuizEventUpdate {
	_u.mutation.AddDropped(v)
	return _u
}

// SetMcqCount sets the "mcq_count" field.
func (_u *QuizEventUpdate) SetMcqCount(v int) *QuizEventUpdate {
	_u.mutation.ResetMcqCount()
	_u.mutation.SetMcqCount(v)
	return _u
}

// SetNillableMcqCount sets the "mcq_count" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableMcqCount(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetMcqCount(*v)
	}
	return _u
}

// AddMcqCount adds value to the "mcq_count" field.
func (_u *QuizEventUpdate) AddMcqCount(v int) *QuizEventUpdate {
	_u.mutation.AddMcqCount(v)
	return _u
}

// SetShortCount sets the "short_count" field.
func (_u *QuizEventUpdate) SetShortCount(v int) *QuizEventUpdate {
	_u.mutation.ResetShortCount()
	_u.mutation.SetShortCount(v)
	return _u
}

// SetNillableShortCount sets the "short_count" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableShortCount(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetShortCount(*v)
	}
	return _u
}

// AddShortCount adds value to the "short_count" field.
func (_u *QuizEventUpdate) AddShortCount(v int) *QuizEventUpdate {
	_u.mutation.AddShortCount(v)
	return _u
}

// SetSourceChars sets the "source_chars" field.
func (_u *QuizEventUpdate) SetSourceChars(v int) *QuizEventUpdate {
	_u.mutation.ResetSourceChars()
	_u.mutation.SetSourceChars(v)
	return _u
}

// SetNillableSourceChars sets the "source_chars" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableSourceChars(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetSourceChars(*v)
	}
	return _u
}

// AddSourceChars adds value to the "source_chars" field.
func (_u *QuizEventUpdate) AddSourceChars(v int) *QuizEventUpdate {
	_u.mutation.AddSourceChars(v)
	return _u
}

// SetItemsJSON sets the "items_json" field.
func (_u *QuizEventUpdate) SetItemsJSON(v string) *QuizEventUpdate {
	_u.mutation.SetItemsJSON(v)
	return _u
}

// SetNillableItemsJSON sets the "items_json" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableItemsJSON(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetItemsJSON(*v)
	}
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdate) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdate) check() error {
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quizevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.quiz_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Requested(); ok {
		_spec.SetField(quizevent.FieldRequested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequested(); ok {
		_spec.AddField(quizevent.FieldRequested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kept(); ok {
		_spec.SetField(quizevent.FieldKept, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedKept(); ok {
		_spec.AddField(quizevent.FieldKept, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Dropped(); ok {
		_spec.SetField(quizevent.FieldDropped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDropped(); ok {
		_spec.AddField(quizevent.FieldDropped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.McqCount(); ok {
		_spec.SetField(quizevent.FieldMcqCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMcqCount(); ok {
		_spec.AddField(quizevent.FieldMcqCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ShortCount(); ok {
		_spec.SetField(quizevent.FieldShortCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedShortCount(); ok {
		_spec.AddField(quizevent.FieldShortCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourceChars(); ok {
		_spec.SetField(quizevent.FieldSourceChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceChars(); ok {
		_spec.AddField(quizevent.FieldSourceChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemsJSON(); ok {
		_spec.SetField(quizevent.FieldItemsJSON, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizEventUpdateOne is the builder for updating a single QuizEvent entity.
type QuizEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizEventMutation
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizEventUpdateOne) SetQuizID(v string) *QuizEventUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableQuizID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetRequested sets the "requested" field.
func (_u *QuizEventUpdateOne) SetRequested(v int) *QuizEventUpdateOne {
	_u.mutation.ResetRequested()
	_u.mutation.SetRequested(v)
	return _u
}

// SetNillableRequested sets the "requested" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableRequested(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetRequested(*v)
	}
	return _u
}

// AddRequested adds value to the "requested" field.
func (_u *QuizEventUpdateOne) AddRequested(v int) *QuizEventUpdateOne {
	_u.mutation.AddRequested(v)
	return _u
}

// SetKept sets the "kept" field.
func (_u *QuizEventUpdateOne) SetKept(v int) *QuizEventUpdateOne {
	_u.mutation.ResetKept()
	_u.mutation.SetKept(v)
	return _u
}

// SetNillableKept sets the "kept" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableKept(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetKept(*v)
	}
	return _u
}

// AddKept adds value to the "kept" field.
func (_u *QuizEventUpdateOne) AddKept(v int) *QuizEventUpdateOne {
	_u.mutation.AddKept(v)
	return _u
}

// SetDropped sets the "dropped" field.
func (_u *QuizEventUpdateOne) SetDropped(v int) *QuizEventUpdateOne {
	_u.mutation.ResetDropped()
	_u.mutation.SetDropped(v)
	return _u
}

// SetNillableDropped sets the "dropped" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableDropped(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetDropped(*v)
	}
	return _u
}

// AddDropped adds value to the "dropped" field.
func (_u *QuizEventUpdateOne) AddDropped(v int) *QuizEventUpdateOne {
	_u.mutation.AddDropped(v)
	return _u
}

// SetMcqCount sets the "mcq_count" field.
func (_u *QuizEventUpdateOne) SetMcqCount(v int) *QuizEventUpdateOne {
	_u.mutation.ResetMcqCount()
	_u.mutation.SetMcqCount(v)
	return _u
}

// SetNillableMcqCount sets the "mcq_count" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableMcqCount(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetMcqCount(*v)
	}
	return _u
}

// AddMcqCount adds value to the "mcq_count" field.
func (_u *QuizEventUpdateOne) AddMcqCount(v int) *QuizEventUpdateOne {
	_u.mutation.AddMcqCount(v)
	return _u
}

// SetShortCount sets the "short_count" field.
func (_u *QuizEventUpdateOne) SetShortCount(v int) *QuizEventUpdateOne {
	_u.mutation.ResetShortCount()
	_u.mutation.SetShortCount(v)
	return _u
}

// SetNillableShortCount sets the "short_count" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableShortCount(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetShortCount(*v)
	}
	return _u
}

// AddShortCount adds value to the "short_count" field.
func (_u *QuizEventUpdateOne) AddShortCount(v int) *QuizEventUpdateOne {
	_u.mutation.AddShortCount(v)
	return _u
}

// SetSourceChars sets the "source_chars" field.
func (_u *QuizEventUpdateOne) SetSourceChars(v int) *QuizEventUpdateOne {
	_u.mutation.ResetSourceChars()
	_u.mutation.SetSourceChars(v)
	return _u
}

// SetNillableSourceChars sets the "source_chars" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableSourceChars(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetSourceChars(*v)
	}
	return _u
}

// AddSourceChars adds value to the "source_chars" field.
func (_u *QuizEventUpdateOne) AddSourceChars(v int) *QuizEventUpdateOne {
	_u.mutation.AddSourceChars(v)
	return _u
}

// SetItemsJSON sets the "items_json" field.
func (_u *QuizEventUpdateOne) SetItemsJSON(v string) *QuizEventUpdateOne {
	_u.mutation.SetItemsJSON(v)
	return _u
}

// SetNillableItemsJSON sets the "items_json" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableItemsJSON(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetItemsJSON(*v)
	}
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdateOne) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdateOne) Where(ps ...predicate.QuizEvent) *QuizEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizEventUpdateOne) Select(field string, fields ...string) *QuizEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizEvent entity.
func (_u *QuizEventUpdateOne) Save(ctx context.Context) (*QuizEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdateOne) SaveX(ctx context.Context) *QuizEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdateOne) check() error {
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quizevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.quiz_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizevent.FieldID)
		for _, f := range fields {
			if !quizevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Requested(); ok {
		_spec.SetField(quizevent.FieldRequested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequested(); ok {
		_spec.AddField(quizevent.FieldRequested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kept(); ok {
		_spec.SetField(quizevent.FieldKept, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedKept(); ok {
		_spec.AddField(quizevent.FieldKept, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Dropped(); ok {
		_spec.SetField(quizevent.FieldDropped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDropped(); ok {
		_spec.AddField(quizevent.FieldDropped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.McqCount(); ok {
		_spec.SetField(quizevent.FieldMcqCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMcqCount(); ok {
		_spec.AddField(quizevent.FieldMcqCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ShortCount(); ok {
		_spec.SetField(quizevent.FieldShortCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedShortCount(); ok {
		_spec.AddField(quizevent.FieldShortCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourceChars(); ok {
		_spec.SetField(quizevent.FieldSourceChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceChars(); ok {
		_spec.AddField(quizevent.FieldSourceChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemsJSON(); ok {
		_spec.SetField(quizevent.FieldItemsJSON, field.TypeString, value)
	}
	_node = &QuizEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
