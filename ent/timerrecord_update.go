// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/akshad/studyquest/ent/predicate"
	"github.com/akshad/studyquest/ent/timerrecord"
)

// TimerRecordUpdate is the builder for updating TimerRecord entities.
type TimerRecordUpdate struct {
	config
	hooks    []Hook
	mutation *TimerRecordMutation
}

// Where appends a list predicates to the TimerRecordUpdate builder.
func (_u *TimerRecordUpdate) Where(ps ...predicate.TimerRecord) *TimerRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlot sets the "slot" field.
func (_u *TimerRecordUpdate) SetSlot(v string) *TimerRecordUpdate {
	_u.mutation.SetSlot(v)
	return _u
}

// SetNillableSlot sets the "slot" field if the given value is not nil.
func (_u *TimerRecordUpdate) SetNillableSlot(v *string) *TimerRecordUpdate {
	if v != nil {
		_u.SetSlot(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *TimerRecordUpdate) SetData(v map[string]interface{}) *TimerRecordUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetToken sets the "token" field.
func (_u *TimerRecordUpdate) SetToken(v int64) *TimerRecordUpdate {
	_u.mutation.ResetToken()
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *TimerRecordUpdate) SetNillableToken(v *int64) *TimerRecordUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// AddToken adds value to the "token" field.
func (_u *TimerRecordUpdate) AddToken(v int64) *TimerRecordUpdate {
	_u.mutation.AddToken(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TimerRecordUpdate) SetUpdatedAt(v time.Time) *TimerRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TimerRecordMutation object of the builder.
func (_u *TimerRecordUpdate) Mutation() *TimerRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TimerRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimerRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TimerRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimerRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TimerRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := timerrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TimerRecordUpdate) check() error {
	if v, ok := _u.mutation.Slot(); ok {
		if err := timerrecord.SlotValidator(v); err != nil {
			return &ValidationError{Name: "slot", err: fmt.Errorf(`ent: validator failed for field "TimerRecord.slot": %w`, err)}
		}
	}
	return nil
}

func (_u *TimerRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timerrecord.Table, timerrecord.Columns, sqlgraph.NewFieldSpec(timerrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slot(); ok {
		_spec.SetField(timerrecord.FieldSlot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(timerrecord.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(timerrecord.FieldToken, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedToken(); ok {
		_spec.AddField(timerrecord.FieldToken, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(timerrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TimerRecordUpdateOne is the builder for updating a single TimerRecord entity.
type TimerRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TimerRecordMutation
}

// SetSlot sets the "slot" field.
func (_u *TimerRecordUpdateOne) SetSlot(v string) *TimerRecordUpdateOne {
	_u.mutation.SetSlot(v)
	return _u
}

// SetNillableSlot sets the "slot" field if the given value is not nil.
func (_u *TimerRecordUpdateOne) SetNillableSlot(v *string) *TimerRecordUpdateOne {
	if v != nil {
		_u.SetSlot(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *TimerRecordUpdateOne) SetData(v map[string]interface{}) *TimerRecordUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetToken sets the "token" field.
func (_u *TimerRecordUpdateOne) SetToken(v int64) *TimerRecordUpdateOne {
	_u.mutation.ResetToken()
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *TimerRecordUpdateOne) SetNillableToken(v *int64) *TimerRecordUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// AddToken adds value to the "token" field.
func (_u *TimerRecordUpdateOne) AddToken(v int64) *TimerRecordUpdateOne {
	_u.mutation.AddToken(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TimerRecordUpdateOne) SetUpdatedAt(v time.Time) *TimerRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TimerRecordMutation object of the builder.
func (_u *TimerRecordUpdateOne) Mutation() *TimerRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the TimerRecordUpdate builder.
func (_u *TimerRecordUpdateOne) Where(ps ...predicate.TimerRecord) *TimerRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TimerRecordUpdateOne) Select(field string, fields ...string) *TimerRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TimerRecord entity.
func (_u *TimerRecordUpdateOne) Save(ctx context.Context) (*TimerRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimerRecordUpdateOne) SaveX(ctx context.Context) *TimerRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TimerRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimerRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TimerRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := timerrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TimerRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Slot(); ok {
		if err := timerrecord.SlotValidator(v); err != nil {
			return &ValidationError{Name: "slot", err: fmt.Errorf(`ent: validator failed for field "TimerRecord.slot": %w`, err)}
		}
	}
	return nil
}

func (_u *TimerRecordUpdateOne) sqlSave(ctx context.Context) (_node *TimerRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timerrecord.Table, timerrecord.Columns, sqlgraph.NewFieldSpec(timerrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TimerRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, timerrecord.FieldID)
		for _, f := range fields {
			if !timerrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != timerrecord.FieldID {
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
	if value, ok := _u.mutation.Slot(); ok {
		_spec.SetField(timerrecord.FieldSlot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(timerrecord.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(timerrecord.FieldToken, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedToken(); ok {
		_spec.AddField(timerrecord.FieldToken, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(timerrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TimerRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
