// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/akshad/studyquest/ent/challengeevent"
	"github.com/akshad/studyquest/ent/predicate"
)

// ChallengeEventUpdate is the builder for updating ChallengeEvent entities.
type ChallengeEventUpdate struct {
	config
	hooks    []Hook
	mutation *ChallengeEventMutation
}

// Where appends a list predicates to the ChallengeEventUpdate builder.
func (_u *ChallengeEventUpdate) Where(ps ...predicate.ChallengeEvent) *ChallengeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChallengeEventUpdate) SetUserID(v string) *ChallengeEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableUserID(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBank sets the "bank" field.
func (_u *ChallengeEventUpdate) SetBank(v string) *ChallengeEventUpdate {
	_u.mutation.SetBank(v)
	return _u
}

// SetNillableBank sets the "bank" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableBank(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetBank(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *ChallengeEventUpdate) SetDay(v string) *ChallengeEventUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableDay(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ChallengeEventUpdate) SetDifficulty(v string) *ChallengeEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableDifficulty(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ChallengeEventUpdate) SetScore(v int) *ChallengeEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableScore(v *int) *ChallengeEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ChallengeEventUpdate) AddScore(v int) *ChallengeEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ChallengeEventUpdate) SetTotal(v int) *ChallengeEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableTotal(v *int) *ChallengeEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ChallengeEventUpdate) AddTotal(v int) *ChallengeEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ChallengeEventUpdate) SetPassed(v bool) *ChallengeEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillablePassed(v *bool) *ChallengeEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetPointsAwarded sets the "points_awarded" field.
func (_u *ChallengeEventUpdate) SetPointsAwarded(v int) *ChallengeEventUpdate {
	_u.mutation.ResetPointsAwarded()
	_u.mutation.SetPointsAwarded(v)
	return _u
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillablePointsAwarded(v *int) *ChallengeEventUpdate {
	if v != nil {
		_u.SetPointsAwarded(*v)
	}
	return _u
}

// AddPointsAwarded adds value to the "points_awarded" field.
func (_u *ChallengeEventUpdate) AddPointsAwarded(v int) *ChallengeEventUpdate {
	_u.mutation.AddPointsAwarded(v)
	return _u
}

// Mutation returns the ChallengeEventMutation object of the builder.
func (_u *ChallengeEventUpdate) Mutation() *ChallengeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChallengeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChallengeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := challengeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bank(); ok {
		if err := challengeevent.BankValidator(v); err != nil {
			return &ValidationError{Name: "bank", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.bank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := challengeevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := challengeevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengeevent.Table, challengeevent.Columns, sqlgraph.NewFieldSpec(challengeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(challengeevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bank(); ok {
		_spec.SetField(challengeevent.FieldBank, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(challengeevent.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(challengeevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(challengeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(challengeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(challengeevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(challengeevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(challengeevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PointsAwarded(); ok {
		_spec.SetField(challengeevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAwarded(); ok {
		_spec.AddField(challengeevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChallengeEventUpdateOne is the builder for updating a single ChallengeEvent entity.
type ChallengeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChallengeEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *ChallengeEventUpdateOne) SetUserID(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableUserID(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBank sets the "bank" field.
func (_u *ChallengeEventUpdateOne) SetBank(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetBank(v)
	return _u
}

// SetNillableBank sets the "bank" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableBank(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetBank(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *ChallengeEventUpdateOne) SetDay(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableDay(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ChallengeEventUpdateOne) SetDifficulty(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableDifficulty(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ChallengeEventUpdateOne) SetScore(v int) *ChallengeEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableScore(v *int) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ChallengeEventUpdateOne) AddScore(v int) *ChallengeEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ChallengeEventUpdateOne) SetTotal(v int) *ChallengeEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableTotal(v *int) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ChallengeEventUpdateOne) AddTotal(v int) *ChallengeEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ChallengeEventUpdateOne) SetPassed(v bool) *ChallengeEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillablePassed(v *bool) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetPointsAwarded sets the "points_awarded" field.
func (_u *ChallengeEventUpdateOne) SetPointsAwarded(v int) *ChallengeEventUpdateOne {
	_u.mutation.ResetPointsAwarded()
	_u.mutation.SetPointsAwarded(v)
	return _u
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillablePointsAwarded(v *int) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetPointsAwarded(*v)
	}
	return _u
}

// AddPointsAwarded adds value to the "points_awarded" field.
func (_u *ChallengeEventUpdateOne) AddPointsAwarded(v int) *ChallengeEventUpdateOne {
	_u.mutation.AddPointsAwarded(v)
	return _u
}

// Mutation returns the ChallengeEventMutation object of the builder.
func (_u *ChallengeEventUpdateOne) Mutation() *ChallengeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChallengeEventUpdate builder.
func (_u *ChallengeEventUpdateOne) Where(ps ...predicate.ChallengeEvent) *ChallengeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChallengeEventUpdateOne) Select(field string, fields ...string) *ChallengeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChallengeEvent entity.
func (_u *ChallengeEventUpdateOne) Save(ctx context.Context) (*ChallengeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeEventUpdateOne) SaveX(ctx context.Context) *ChallengeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChallengeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := challengeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bank(); ok {
		if err := challengeevent.BankValidator(v); err != nil {
			return &ValidationError{Name: "bank", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.bank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := challengeevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := challengeevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeEventUpdateOne) sqlSave(ctx context.Context) (_node *ChallengeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengeevent.Table, challengeevent.Columns, sqlgraph.NewFieldSpec(challengeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChallengeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, challengeevent.FieldID)
		for _, f := range fields {
			if !challengeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != challengeevent.FieldID {
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
		_spec.SetField(challengeevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bank(); ok {
		_spec.SetField(challengeevent.FieldBank, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(challengeevent.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(challengeevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(challengeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(challengeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(challengeevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(challengeevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(challengeevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PointsAwarded(); ok {
		_spec.SetField(challengeevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAwarded(); ok {
		_spec.AddField(challengeevent.FieldPointsAwarded, field.TypeInt, value)
	}
	_node = &ChallengeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
