package store

import (
	"context"
	"fmt"

	"github.com/akshad/studyquest/ent"
	"github.com/akshad/studyquest/ent/challengeevent"
	"github.com/akshad/studyquest/ent/focusevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendFocusEvent(ctx context.Context, data FocusEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.FocusEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetBank(data.Bank).
		SetDay(data.Day).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save focus event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendChallengeEvent(ctx context.Context, data ChallengeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ChallengeEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetBank(data.Bank).
		SetDay(data.Day).
		SetDifficulty(data.Difficulty).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetPassed(data.Passed).
		SetPointsAwarded(data.PointsAwarded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save challenge event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) FocusByDay(ctx context.Context, userID string, days int) ([]DayCount, error) {
	events, err := r.client.FocusEvent.Query().
		Where(focusevent.UserID(userID)).
		Order(ent.Desc(focusevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query focus events: %w", err)
	}

	counts := map[string]int{}
	var order []string
	for _, e := range events {
		if _, seen := counts[e.Day]; !seen {
			if len(order) == days {
				continue
			}
			order = append(order, e.Day)
		}
		counts[e.Day]++
	}

	// order holds the most recent days first; emit oldest first.
	out := make([]DayCount, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		out = append(out, DayCount{Day: order[i], Count: counts[order[i]]})
	}
	return out, nil
}

func (r *eventRepo) ChallengeCounts(ctx context.Context, userID string) (int, int, error) {
	attempted, err := r.client.ChallengeEvent.Query().
		Where(challengeevent.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count challenge events: %w", err)
	}

	passed, err := r.client.ChallengeEvent.Query().
		Where(challengeevent.UserID(userID), challengeevent.Passed(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count passed challenges: %w", err)
	}
	return attempted, passed, nil
}
