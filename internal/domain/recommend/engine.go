package recommend

import (
	"fmt"
	"sort"
	"strings"
	"time"

	domjob "gradmatch/internal/domain/job"

	"github.com/google/uuid"
)

const (
	locationWeight = 2
	jobTypeWeight  = 3
	courseWeight   = 3
	skillCap       = 5

	// candidateLimit bounds scoring work; only the most recent eligible
	// jobs are considered.
	candidateLimit = 50
)

// StudentInput is the matching side of a student profile.
type StudentInput struct {
	Course            string
	PreferredJobType  string
	PreferredLocation string
	SkillNames        []string
}

type Scored struct {
	Job     domjob.Job
	Score   int
	Reasons []string
}

// Recommend ranks jobs for a student. It is deterministic and
// side-effect free: same inputs produce the same ordered output.
//
// Jobs already saved by the student are excluded. A broad disjunctive
// pre-filter admits any job with at least one textual overlap; the
// weighted score then decides inclusion, so a job admitted by the filter
// can still be dropped when it scores zero.
func Recommend(in StudentInput, jobs []domjob.Job, savedJobIDs map[uuid.UUID]bool) []Scored {
	keywords := make([]string, 0, len(in.SkillNames)+1)
	if strings.TrimSpace(in.Course) != "" {
		keywords = append(keywords, in.Course)
	}
	keywords = append(keywords, in.SkillNames...)

	eligible := make([]domjob.Job, 0, len(jobs))
	for _, j := range jobs {
		if savedJobIDs[j.ID] {
			continue
		}
		if matchesAny(in, keywords, j) {
			eligible = append(eligible, j)
		}
	}

	sortByRecency(eligible)
	if len(eligible) > candidateLimit {
		eligible = eligible[:candidateLimit]
	}

	out := make([]Scored, 0, len(eligible))
	for _, j := range eligible {
		score, reasons := scoreJob(in, j)
		if score == 0 {
			continue
		}
		out = append(out, Scored{Job: j, Score: score, Reasons: reasons})
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Score != out[b].Score {
			return out[a].Score > out[b].Score
		}
		pa, pb := postedOrZero(out[a].Job), postedOrZero(out[b].Job)
		if !pa.Equal(pb) {
			return pa.After(pb)
		}
		return out[a].Job.CachedAt.After(out[b].Job.CachedAt)
	})

	return out
}

// matchesAny is the disjunctive pre-filter: one weak textual overlap is
// enough to keep a job in the candidate set.
func matchesAny(in StudentInput, keywords []string, j domjob.Job) bool {
	if in.PreferredLocation != "" && containsFold(j.Location, in.PreferredLocation) {
		return true
	}
	if in.PreferredJobType != "" && containsFold(j.JobType, in.PreferredJobType) {
		return true
	}
	for _, kw := range keywords {
		if containsFold(j.Title, kw) || containsFold(j.Description, kw) || containsFold(j.Company, kw) {
			return true
		}
	}
	return false
}

func scoreJob(in StudentInput, j domjob.Job) (int, []string) {
	score := 0
	reasons := make([]string, 0, 4)

	if in.PreferredLocation != "" && containsFold(j.Location, in.PreferredLocation) {
		score += locationWeight
		reasons = append(reasons, fmt.Sprintf("Matches preferred location: %s", in.PreferredLocation))
	}

	if in.PreferredJobType != "" && strings.EqualFold(j.JobType, in.PreferredJobType) {
		score += jobTypeWeight
		reasons = append(reasons, fmt.Sprintf("Matches preferred job type: %s", in.PreferredJobType))
	}

	if in.Course != "" && (containsFold(j.Title, in.Course) || containsFold(j.Description, in.Course)) {
		score += courseWeight
		reasons = append(reasons, fmt.Sprintf("Related to your course: %s", in.Course))
	}

	blob := strings.ToLower(j.Title + " " + j.Description + " " + j.Company)
	matched := make([]string, 0, len(in.SkillNames))
	for _, s := range in.SkillNames {
		if s == "" {
			continue
		}
		if strings.Contains(blob, strings.ToLower(s)) {
			matched = append(matched, s)
		}
	}
	if len(matched) > 0 {
		boost := len(matched)
		if boost > skillCap {
			boost = skillCap
		}
		score += boost
		reasons = append(reasons, "Matches your skills: "+strings.Join(matched, ", "))
	}

	return score, reasons
}

func sortByRecency(jobs []domjob.Job) {
	sort.SliceStable(jobs, func(a, b int) bool {
		pa, pb := postedOrZero(jobs[a]), postedOrZero(jobs[b])
		if !pa.Equal(pb) {
			return pa.After(pb)
		}
		return jobs[a].CachedAt.After(jobs[b].CachedAt)
	})
}

func postedOrZero(j domjob.Job) time.Time {
	if j.PostedDate == nil {
		return time.Time{}
	}
	return *j.PostedDate
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
