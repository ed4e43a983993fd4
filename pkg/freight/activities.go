package freight

// Activity names recognized in the Cutterfile activities list. The release
// runner resolves each name against its registry; the two lists are kept in
// lockstep by a test over the registry.
const (
	ActivityVersionBump = "version_bump"
	ActivityChangelog   = "changelog"
	ActivityTag         = "tag"
	ActivityPushTag     = "push_tag"
	ActivitySdist       = "sdist"
	ActivityPublish     = "publish"
	ActivityGHRelease   = "ghrelease"
	ActivityCheck       = "check"
	ActivityAnnounce    = "announce"
)

// DefaultActivities is the sequence a scaffolded Cutterfile starts with.
// check and announce are opt-in.
func DefaultActivities() []string {
	return []string{
		ActivityVersionBump,
		ActivityChangelog,
		ActivityTag,
		ActivityPushTag,
		ActivitySdist,
		ActivityPublish,
		ActivityGHRelease,
	}
}

var recognizedActivities = map[string]struct{}{
	ActivityVersionBump: {},
	ActivityChangelog:   {},
	ActivityTag:         {},
	ActivityPushTag:     {},
	ActivitySdist:       {},
	ActivityPublish:     {},
	ActivityGHRelease:   {},
	ActivityCheck:       {},
	ActivityAnnounce:    {},
}

func IsRecognizedActivity(name string) bool {
	_, ok := recognizedActivities[name]
	return ok
}

func RecognizedActivities() []string {
	return []string{
		ActivityVersionBump,
		ActivityChangelog,
		ActivityTag,
		ActivityPushTag,
		ActivitySdist,
		ActivityPublish,
		ActivityGHRelease,
		ActivityCheck,
		ActivityAnnounce,
	}
}
