package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akshad/studyquest/ent"
	"github.com/akshad/studyquest/ent/timerrecord"
)

// timerSlot is the singleton discriminator for the timer-state row.
const timerSlot = "current"

// timerRepo implements TimerRepo using the ent client.
type timerRepo struct {
	client *ent.Client
}

func (r *timerRepo) Load(ctx context.Context) ([]byte, int64, error) {
	rec, err := r.client.TimerRecord.Query().
		Where(timerrecord.Slot(timerSlot)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("query timer state: %w", err)
	}

	b, err := json.Marshal(rec.Data)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal timer state: %w", err)
	}
	return b, rec.Token, nil
}

func (r *timerRepo) Save(ctx context.Context, data []byte) (int64, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return 0, fmt.Errorf("timer state is not a JSON object: %w", err)
	}

	existing, err := r.client.TimerRecord.Query().
		Where(timerrecord.Slot(timerSlot)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return 0, fmt.Errorf("query timer state: %w", err)
		}
		rec, err := r.client.TimerRecord.Create().
			SetSlot(timerSlot).
			SetData(m).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("create timer state: %w", err)
		}
		return rec.Token, nil
	}

	rec, err := existing.Update().
		SetData(m).
		SetToken(existing.Token + 1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save timer state: %w", err)
	}
	return rec.Token, nil
}

func (r *timerRepo) Token(ctx context.Context) (int64, error) {
	rec, err := r.client.TimerRecord.Query().
		Where(timerrecord.Slot(timerSlot)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query timer token: %w", err)
	}
	return rec.Token, nil
}
