package rewards

import "fmt"

// NoticeKind categorizes a reconciler notice for display.
type NoticeKind string

const (
	NoticeStreakLost   NoticeKind = "streakLost"
	NoticeStreakGained NoticeKind = "streakGained"
	NoticePetUnlocked  NoticeKind = "petUnlocked"
)

// Notice is a one-time message produced by the reconciler. Delivery is
// best-effort; losing a notice never loses state.
type Notice struct {
	Kind    NoticeKind
	Message string
	PetID   string
}

func streakLostNotice(old int) Notice {
	return Notice{
		Kind:    NoticeStreakLost,
		Message: fmt.Sprintf("Your %d-day streak ended. Complete a challenge today to start a new one!", old),
	}
}

func streakGainedNotice(streak int) Notice {
	return Notice{
		Kind:    NoticeStreakGained,
		Message: fmt.Sprintf("Day %d of your streak!", streak),
	}
}

func petUnlockedNotice(p Pet) Notice {
	return Notice{
		Kind:    NoticePetUnlocked,
		Message: fmt.Sprintf("%s joined your sanctuary! (%s)", p.Name, p.Description),
		PetID:   p.ID,
	}
}
