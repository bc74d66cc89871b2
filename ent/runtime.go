// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/akshad/studyquest/ent/challengeevent"
	"github.com/akshad/studyquest/ent/focusevent"
	"github.com/akshad/studyquest/ent/llmrequestevent"
	"github.com/akshad/studyquest/ent/profilerecord"
	"github.com/akshad/studyquest/ent/schema"
	"github.com/akshad/studyquest/ent/timerrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	challengeeventMixin := schema.ChallengeEvent{}.Mixin()
	challengeeventMixinFields0 := challengeeventMixin[0].Fields()
	_ = challengeeventMixinFields0
	challengeeventFields := schema.ChallengeEvent{}.Fields()
	_ = challengeeventFields
	// challengeeventDescTimestamp is the schema descriptor for timestamp field.
	challengeeventDescTimestamp := challengeeventMixinFields0[1].Descriptor()
	// challengeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	challengeevent.DefaultTimestamp = challengeeventDescTimestamp.Default.(func() time.Time)
	// challengeeventDescUserID is the schema descriptor for user_id field.
	challengeeventDescUserID := challengeeventFields[0].Descriptor()
	// challengeevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	challengeevent.UserIDValidator = challengeeventDescUserID.Validators[0].(func(string) error)
	// challengeeventDescBank is the schema descriptor for bank field.
	challengeeventDescBank := challengeeventFields[1].Descriptor()
	// challengeevent.BankValidator is a validator for the "bank" field. It is called by the builders before save.
	challengeevent.BankValidator = challengeeventDescBank.Validators[0].(func(string) error)
	// challengeeventDescDay is the schema descriptor for day field.
	challengeeventDescDay := challengeeventFields[2].Descriptor()
	// challengeevent.DayValidator is a validator for the "day" field. It is called by the builders before save.
	challengeevent.DayValidator = challengeeventDescDay.Validators[0].(func(string) error)
	// challengeeventDescDifficulty is the schema descriptor for difficulty field.
	challengeeventDescDifficulty := challengeeventFields[3].Descriptor()
	// challengeevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	challengeevent.DifficultyValidator = challengeeventDescDifficulty.Validators[0].(func(string) error)
	// challengeeventDescScore is the schema descriptor for score field.
	challengeeventDescScore := challengeeventFields[4].Descriptor()
	// challengeevent.DefaultScore holds the default value on creation for the score field.
	challengeevent.DefaultScore = challengeeventDescScore.Default.(int)
	// challengeeventDescTotal is the schema descriptor for total field.
	challengeeventDescTotal := challengeeventFields[5].Descriptor()
	// challengeevent.DefaultTotal holds the default value on creation for the total field.
	challengeevent.DefaultTotal = challengeeventDescTotal.Default.(int)
	// challengeeventDescPassed is the schema descriptor for passed field.
	challengeeventDescPassed := challengeeventFields[6].Descriptor()
	// challengeevent.DefaultPassed holds the default value on creation for the passed field.
	challengeevent.DefaultPassed = challengeeventDescPassed.Default.(bool)
	// challengeeventDescPointsAwarded is the schema descriptor for points_awarded field.
	challengeeventDescPointsAwarded := challengeeventFields[7].Descriptor()
	// challengeevent.DefaultPointsAwarded holds the default value on creation for the points_awarded field.
	challengeevent.DefaultPointsAwarded = challengeeventDescPointsAwarded.Default.(int)
	focuseventMixin := schema.FocusEvent{}.Mixin()
	focuseventMixinFields0 := focuseventMixin[0].Fields()
	_ = focuseventMixinFields0
	focuseventFields := schema.FocusEvent{}.Fields()
	_ = focuseventFields
	// focuseventDescTimestamp is the schema descriptor for timestamp field.
	focuseventDescTimestamp := focuseventMixinFields0[1].Descriptor()
	// focusevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	focusevent.DefaultTimestamp = focuseventDescTimestamp.Default.(func() time.Time)
	// focuseventDescSessionID is the schema descriptor for session_id field.
	focuseventDescSessionID := focuseventFields[0].Descriptor()
	// focusevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	focusevent.SessionIDValidator = focuseventDescSessionID.Validators[0].(func(string) error)
	// focuseventDescUserID is the schema descriptor for user_id field.
	focuseventDescUserID := focuseventFields[1].Descriptor()
	// focusevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	focusevent.UserIDValidator = focuseventDescUserID.Validators[0].(func(string) error)
	// focuseventDescBank is the schema descriptor for bank field.
	focuseventDescBank := focuseventFields[2].Descriptor()
	// focusevent.BankValidator is a validator for the "bank" field. It is called by the builders before save.
	focusevent.BankValidator = focuseventDescBank.Validators[0].(func(string) error)
	// focuseventDescDay is the schema descriptor for day field.
	focuseventDescDay := focuseventFields[3].Descriptor()
	// focusevent.DayValidator is a validator for the "day" field. It is called by the builders before save.
	focusevent.DayValidator = focuseventDescDay.Validators[0].(func(string) error)
	// focuseventDescDurationSecs is the schema descriptor for duration_secs field.
	focuseventDescDurationSecs := focuseventFields[4].Descriptor()
	// focusevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	focusevent.DefaultDurationSecs = focuseventDescDurationSecs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	profilerecordFields := schema.ProfileRecord{}.Fields()
	_ = profilerecordFields
	// profilerecordDescUserID is the schema descriptor for user_id field.
	profilerecordDescUserID := profilerecordFields[0].Descriptor()
	// profilerecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profilerecord.UserIDValidator = profilerecordDescUserID.Validators[0].(func(string) error)
	// profilerecordDescToken is the schema descriptor for token field.
	profilerecordDescToken := profilerecordFields[2].Descriptor()
	// profilerecord.DefaultToken holds the default value on creation for the token field.
	profilerecord.DefaultToken = profilerecordDescToken.Default.(int64)
	// profilerecordDescUpdatedAt is the schema descriptor for updated_at field.
	profilerecordDescUpdatedAt := profilerecordFields[3].Descriptor()
	// profilerecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profilerecord.DefaultUpdatedAt = profilerecordDescUpdatedAt.Default.(func() time.Time)
	// profilerecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profilerecord.UpdateDefaultUpdatedAt = profilerecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	timerrecordFields := schema.TimerRecord{}.Fields()
	_ = timerrecordFields
	// timerrecordDescSlot is the schema descriptor for slot field.
	timerrecordDescSlot := timerrecordFields[0].Descriptor()
	// timerrecord.SlotValidator is a validator for the "slot" field. It is called by the builders before save.
	timerrecord.SlotValidator = timerrecordDescSlot.Validators[0].(func(string) error)
	// timerrecordDescToken is the schema descriptor for token field.
	timerrecordDescToken := timerrecordFields[2].Descriptor()
	// timerrecord.DefaultToken holds the default value on creation for the token field.
	timerrecord.DefaultToken = timerrecordDescToken.Default.(int64)
	// timerrecordDescUpdatedAt is the schema descriptor for updated_at field.
	timerrecordDescUpdatedAt := timerrecordFields[3].Descriptor()
	// timerrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	timerrecord.DefaultUpdatedAt = timerrecordDescUpdatedAt.Default.(func() time.Time)
	// timerrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	timerrecord.UpdateDefaultUpdatedAt = timerrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
