// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/akshad/studyquest/ent/challengeevent"
)

// ChallengeEventCreate is the builder for creating a ChallengeEvent entity.
type ChallengeEventCreate struct {
	config
	mutation *ChallengeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ChallengeEventCreate) SetSequence(v int64) *ChallengeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ChallengeEventCreate) SetTimestamp(v time.Time) *ChallengeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ChallengeEventCreate) SetNillableTimestamp(v *time.Time) *ChallengeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ChallengeEventCreate) SetUserID(v string) *ChallengeEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetBank sets the "bank" field.
func (_c *ChallengeEventCreate) SetBank(v string) *ChallengeEventCreate {
	_c.mutation.SetBank(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *ChallengeEventCreate) SetDay(v string) *ChallengeEventCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ChallengeEventCreate) SetDifficulty(v string) *ChallengeEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ChallengeEventCreate) SetScore(v int) *ChallengeEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ChallengeEventCreate) SetNillableScore(v *int) *ChallengeEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *ChallengeEventCreate) SetTotal(v int) *ChallengeEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *ChallengeEventCreate) SetNillableTotal(v *int) *ChallengeEventCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetPassed sets the "passed" field.
func (_c *ChallengeEventCreate) SetPassed(v bool) *ChallengeEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *ChallengeEventCreate) SetNillablePassed(v *bool) *ChallengeEventCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// SetPointsAwarded sets the "points_awarded" field.
func (_c *ChallengeEventCreate) SetPointsAwarded(v int) *ChallengeEventCreate {
	_c.mutation.SetPointsAwarded(v)
	return _c
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_c *ChallengeEventCreate) SetNillablePointsAwarded(v *int) *ChallengeEventCreate {
	if v != nil {
		_c.SetPointsAwarded(*v)
	}
	return _c
}

// Mutation returns the ChallengeEventMutation object of the builder.
func (_c *ChallengeEventCreate) Mutation() *ChallengeEventMutation {
	return _c.mutation
}

// Save creates the ChallengeEvent in the database.
func (_c *ChallengeEventCreate) Save(ctx context.Context) (*ChallengeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChallengeEventCreate) SaveX(ctx context.Context) *ChallengeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChallengeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := challengeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := challengeevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Total(); !ok {
		v := challengeevent.DefaultTotal
		_c.mutation.SetTotal(v)
	}
	if _, ok := _c.mutation.Passed(); !ok {
		v := challengeevent.DefaultPassed
		_c.mutation.SetPassed(v)
	}
	if _, ok := _c.mutation.PointsAwarded(); !ok {
		v := challengeevent.DefaultPointsAwarded
		_c.mutation.SetPointsAwarded(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChallengeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ChallengeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ChallengeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ChallengeEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := challengeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Bank(); !ok {
		return &ValidationError{Name: "bank", err: errors.New(`ent: missing required field "ChallengeEvent.bank"`)}
	}
	if v, ok := _c.mutation.Bank(); ok {
		if err := challengeevent.BankValidator(v); err != nil {
			return &ValidationError{Name: "bank", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.bank": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "ChallengeEvent.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := challengeevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ChallengeEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := challengeevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ChallengeEvent.score"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "ChallengeEvent.total"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "ChallengeEvent.passed"`)}
	}
	if _, ok := _c.mutation.PointsAwarded(); !ok {
		return &ValidationError{Name: "points_awarded", err: errors.New(`ent: missing required field "ChallengeEvent.points_awarded"`)}
	}
	return nil
}

func (_c *ChallengeEventCreate) sqlSave(ctx context.Context) (*ChallengeEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChallengeEventCreate) createSpec() (*ChallengeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ChallengeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(challengeevent.Table, sqlgraph.NewFieldSpec(challengeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(challengeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(challengeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(challengeevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Bank(); ok {
		_spec.SetField(challengeevent.FieldBank, field.TypeString, value)
		_node.Bank = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(challengeevent.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(challengeevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(challengeevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(challengeevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(challengeevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.PointsAwarded(); ok {
		_spec.SetField(challengeevent.FieldPointsAwarded, field.TypeInt, value)
		_node.PointsAwarded = value
	}
	return _node, _spec
}

// ChallengeEventCreateBulk is the builder for creating many ChallengeEvent entities in bulk.
type ChallengeEventCreateBulk struct {
	config
	err      error
	builders []*ChallengeEventCreate
}

// Save creates the ChallengeEvent entities in the database.
func (_c *ChallengeEventCreateBulk) Save(ctx context.Context) ([]*ChallengeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChallengeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChallengeEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChallengeEventCreateBulk) SaveX(ctx context.Context) []*ChallengeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
