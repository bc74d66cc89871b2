package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akshad/studyquest/ent"
	"github.com/akshad/studyquest/ent/profilerecord"
	"github.com/akshad/studyquest/internal/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Load(ctx context.Context, userID string) (*profile.Profile, int64, error) {
	rec, err := r.client.ProfileRecord.Query().
		Where(profilerecord.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, 0, profile.ErrProfileNotFound
		}
		return nil, 0, fmt.Errorf("query profile %q: %w", userID, err)
	}

	p, err := decodeProfile(rec.Data)
	if err != nil {
		// Corrupt document. Treated as no prior state; the caller
		// reinitializes at sign-in.
		return nil, 0, profile.ErrProfileNotFound
	}
	p.Normalize()
	return p, rec.Token, nil
}

func (r *profileRepo) Save(ctx context.Context, p *profile.Profile) (int64, error) {
	dataMap, err := encodeDocument(p)
	if err != nil {
		return 0, fmt.Errorf("marshal profile: %w", err)
	}

	existing, err := r.client.ProfileRecord.Query().
		Where(profilerecord.UserID(p.ID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return 0, fmt.Errorf("query profile %q: %w", p.ID, err)
		}
		rec, err := r.client.ProfileRecord.Create().
			SetUserID(p.ID).
			SetData(dataMap).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("create profile %q: %w", p.ID, err)
		}
		return rec.Token, nil
	}

	rec, err := existing.Update().
		SetData(dataMap).
		SetToken(existing.Token + 1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save profile %q: %w", p.ID, err)
	}
	return rec.Token, nil
}

// encodeDocument converts a value to map[string]any for ent JSON storage.
func encodeDocument(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeProfile(data map[string]any) (*profile.Profile, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var p profile.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, fmt.Errorf("profile document missing id")
	}
	return &p, nil
}
