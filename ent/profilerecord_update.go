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
	"github.com/akshad/studyquest/ent/profilerecord"
)

// ProfileRecordUpdate is the builder for updating ProfileRecord entities.
type ProfileRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileRecordMutation
}

// Where appends a list predicates to the ProfileRecordUpdate builder.
func (_u *ProfileRecordUpdate) Where(ps ...predicate.ProfileRecord) *ProfileRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProfileRecordUpdate) SetUserID(v string) *ProfileRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProfileRecordUpdate) SetNillableUserID(v *string) *ProfileRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ProfileRecordUpdate) SetData(v map[string]interface{}) *ProfileRecordUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetToken sets the "token" field.
func (_u *ProfileRecordUpdate) SetToken(v int64) *ProfileRecordUpdate {
	_u.mutation.ResetToken()
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *ProfileRecordUpdate) SetNillableToken(v *int64) *ProfileRecordUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// AddToken adds value to the "token" field.
func (_u *ProfileRecordUpdate) AddToken(v int64) *ProfileRecordUpdate {
	_u.mutation.AddToken(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileRecordUpdate) SetUpdatedAt(v time.Time) *ProfileRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileRecordMutation object of the builder.
func (_u *ProfileRecordUpdate) Mutation() *ProfileRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profilerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := profilerecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProfileRecord.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profilerecord.Table, profilerecord.Columns, sqlgraph.NewFieldSpec(profilerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(profilerecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(profilerecord.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(profilerecord.FieldToken, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedToken(); ok {
		_spec.AddField(profilerecord.FieldToken, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profilerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profilerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileRecordUpdateOne is the builder for updating a single ProfileRecord entity.
type ProfileRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProfileRecordUpdateOne) SetUserID(v string) *ProfileRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProfileRecordUpdateOne) SetNillableUserID(v *string) *ProfileRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ProfileRecordUpdateOne) SetData(v map[string]interface{}) *ProfileRecordUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetToken sets the "token" field.
func (_u *ProfileRecordUpdateOne) SetToken(v int64) *ProfileRecordUpdateOne {
	_u.mutation.ResetToken()
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *ProfileRecordUpdateOne) SetNillableToken(v *int64) *ProfileRecordUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// AddToken adds value to the "token" field.
func (_u *ProfileRecordUpdateOne) AddToken(v int64) *ProfileRecordUpdateOne {
	_u.mutation.AddToken(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileRecordUpdateOne) SetUpdatedAt(v time.Time) *ProfileRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileRecordMutation object of the builder.
func (_u *ProfileRecordUpdateOne) Mutation() *ProfileRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileRecordUpdate builder.
func (_u *ProfileRecordUpdateOne) Where(ps ...predicate.ProfileRecord) *ProfileRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileRecordUpdateOne) Select(field string, fields ...string) *ProfileRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProfileRecord entity.
func (_u *ProfileRecordUpdateOne) Save(ctx context.Context) (*ProfileRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileRecordUpdateOne) SaveX(ctx context.Context) *ProfileRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profilerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := profilerecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProfileRecord.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProfileRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profilerecord.Table, profilerecord.Columns, sqlgraph.NewFieldSpec(profilerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProfileRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profilerecord.FieldID)
		for _, f := range fields {
			if !profilerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profilerecord.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(profilerecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(profilerecord.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(profilerecord.FieldToken, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedToken(); ok {
		_spec.AddField(profilerecord.FieldToken, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profilerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProfileRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profilerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
