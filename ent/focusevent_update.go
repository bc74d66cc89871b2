// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/akshad/studyquest/ent/focusevent"
	"github.com/akshad/studyquest/ent/predicate"
)

// FocusEventUpdate is the builder for updating FocusEvent entities.
type FocusEventUpdate struct {
	config
	hooks    []Hook
	mutation *FocusEventMutation
}

// Where appends a list predicates to the FocusEventUpdate builder.
func (_u *FocusEventUpdate) Where(ps ...predicate.FocusEvent) *FocusEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *FocusEventUpdate) SetSessionID(v string) *FocusEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FocusEventUpdate) SetNillableSessionID(v *string) *FocusEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FocusEventUpdate) SetUserID(v string) *FocusEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FocusEventUpdate) SetNillableUserID(v *string) *FocusEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBank sets the "bank" field.
func (_u *FocusEventUpdate) SetBank(v string) *FocusEventUpdate {
	_u.mutation.SetBank(v)
	return _u
}

// SetNillableBank sets the "bank" field if the given value is not nil.
func (_u *FocusEventUpdate) SetNillableBank(v *string) *FocusEventUpdate {
	if v != nil {
		_u.SetBank(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *FocusEventUpdate) SetDay(v string) *FocusEventUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *FocusEventUpdate) SetNillableDay(v *string) *FocusEventUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *FocusEventUpdate) SetDurationSecs(v int) *FocusEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *FocusEventUpdate) SetNillableDurationSecs(v *int) *FocusEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *FocusEventUpdate) AddDurationSecs(v int) *FocusEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the FocusEventMutation object of the builder.
func (_u *FocusEventUpdate) Mutation() *FocusEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FocusEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FocusEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FocusEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FocusEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FocusEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := focusevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "FocusEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := focusevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "FocusEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bank(); ok {
		if err := focusevent.BankValidator(v); err != nil {
			return &ValidationError{Name: "bank", err: fmt.Errorf(`ent: validator failed for field "FocusEvent.bank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := focusevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "FocusEvent.day": %w`, err)}
		}
	}
	return nil
}

func (_u *FocusEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(focusevent.Table, focusevent.Columns, sqlgraph.NewFieldSpec(focusevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(focusevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(focusevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bank(); ok {
		_spec.SetField(focusevent.FieldBank, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(focusevent.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(focusevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(focusevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{focusevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FocusEventUpdateOne is the builder for updating a single FocusEvent entity.
type FocusEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FocusEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *FocusEventUpdateOne) SetSessionID(v string) *FocusEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FocusEventUpdateOne) SetNillableSessionID(v *string) *FocusEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FocusEventUpdateOne) SetUserID(v string) *FocusEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FocusEventUpdateOne) SetNillableUserID(v *string) *FocusEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBank sets the "bank" field.
func (_u *FocusEventUpdateOne) SetBank(v string) *FocusEventUpdateOne {
	_u.mutation.SetBank(v)
	return _u
}

// SetNillableBank sets the "bank" field if the given value is not nil.
func (_u *FocusEventUpdateOne) SetNillableBank(v *string) *FocusEventUpdateOne {
	if v != nil {
		_u.SetBank(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *FocusEventUpdateOne) SetDay(v string) *FocusEventUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *FocusEventUpdateOne) SetNillableDay(v *string) *FocusEventUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *FocusEventUpdateOne) SetDurationSecs(v int) *FocusEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *FocusEventUpdateOne) SetNillableDurationSecs(v *int) *FocusEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *FocusEventUpdateOne) AddDurationSecs(v int) *FocusEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the FocusEventMutation object of the builder.
func (_u *FocusEventUpdateOne) Mutation() *FocusEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the FocusEventUpdate builder.
func (_u *FocusEventUpdateOne) Where(ps ...predicate.FocusEvent) *FocusEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FocusEventUpdateOne) Select(field string, fields ...string) *FocusEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FocusEvent entity.
func (_u *FocusEventUpdateOne) Save(ctx context.Context) (*FocusEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FocusEventUpdateOne) SaveX(ctx context.Context) *FocusEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FocusEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FocusEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FocusEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := focusevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "FocusEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := focusevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "FocusEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bank(); ok {
		if err := focusevent.BankValidator(v); err != nil {
			return &ValidationError{Name: "bank", err: fmt.Errorf(`ent: validator failed for field "FocusEvent.bank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := focusevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "FocusEvent.day": %w`, err)}
		}
	}
	return nil
}

func (_u *FocusEventUpdateOne) sqlSave(ctx context.Context) (_node *FocusEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(focusevent.Table, focusevent.Columns, sqlgraph.NewFieldSpec(focusevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FocusEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, focusevent.FieldID)
		for _, f := range fields {
			if !focusevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != focusevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(focusevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(focusevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bank(); ok {
		_spec.SetField(focusevent.FieldBank, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(focusevent.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(focusevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(focusevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &FocusEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{focusevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
