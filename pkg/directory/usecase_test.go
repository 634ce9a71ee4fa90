package directory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruit/pkg/auth"
	"github.com/artem13815/recruit/pkg/interview"
	"github.com/artem13815/recruit/pkg/resume"
)

type favKey struct{ hr, cand uuid.UUID }

type memRepo struct {
	mu         sync.Mutex
	candidates []Candidate
	favorites  map[favKey]Favorite
}

func newMemRepo(cs ...Candidate) *memRepo {
	return &memRepo{candidates: cs, favorites: map[favKey]Favorite{}}
}

func (m *memRepo) ListCandidates(context.Context) ([]Candidate, error) {
	return append([]Candidate(nil), m.candidates...), nil
}

func (m *memRepo) GetCandidate(_ context.Context, id uuid.UUID) (Candidate, error) {
	for _, c := range m.candidates {
		if c.UserID == id {
			return c, nil
		}
	}
	return Candidate{}, ErrCandidateNotFound
}

func (m *memRepo) UpsertFavorite(_ context.Context, f Favorite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := favKey{f.HRUserID, f.CandidateUserID}
	if old, ok := m.favorites[k]; ok {
		f.ID, f.CreatedAt = old.ID, old.CreatedAt
	}
	m.favorites[k] = f
	return nil
}

func (m *memRepo) DeleteFavorite(_ context.Context, hrID, candID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.favorites, favKey{hrID, candID})
	return nil
}

func (m *memRepo) FavoriteExists(_ context.Context, hrID, candID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.favorites[favKey{hrID, candID}]
	return ok, nil
}

func (m *memRepo) ListFavorites(_ context.Context, hrID uuid.UUID) ([]FavoriteView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []FavoriteView
	for k, f := range m.favorites {
		if k.hr != hrID {
			continue
		}
		c, _ := m.GetCandidate(context.Background(), k.cand)
		out = append(out, FavoriteView{Favorite: f, Candidate: c})
	}
	return out, nil
}

type memResumes struct {
	byOwner  map[uuid.UUID][]resume.Resume
	analyses map[uuid.UUID]resume.Analysis
}

func (m memResumes) ListByOwner(_ context.Context, owner uuid.UUID) ([]resume.Resume, error) {
	return m.byOwner[owner], nil
}

func (m memResumes) CurrentAnalysis(_ context.Context, id uuid.UUID) (resume.Analysis, error) {
	a, ok := m.analyses[id]
	if !ok {
		return resume.Analysis{}, resume.ErrNoAnalysis
	}
	return a, nil
}

type memInterviews []interview.Record

func (m memInterviews) ListByUser(_ context.Context, userID uuid.UUID, _ int) ([]interview.Record, error) {
	var out []interview.Record
	for _, r := range m {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

var (
	hrActor        = auth.Actor{UserID: uuid.New(), Role: auth.RoleHR}
	candidateActor = auth.Actor{UserID: uuid.New(), Role: auth.RoleCandidate}
)

func TestToggleFavoriteIsIdempotentUpsert(t *testing.T) {
	c := cand("Иван Иванов", "Разработчик", ptr(90.0), ptr(day))
	c.ResumeID = ptr(uuid.New())
	repo := newMemRepo(c)
	svc := NewService(repo, memResumes{}, memInterviews{}, nil)
	ctx := context.Background()

	ok, err := svc.ToggleFavorite(ctx, hrActor, c.UserID, nil, "первый")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = svc.ToggleFavorite(ctx, hrActor, c.UserID, nil, "  второй ")
	require.NoError(t, err)
	assert.True(t, ok)

	favs, err := svc.ListFavorites(ctx, hrActor)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "второй", favs[0].Favorite.Notes)
	assert.Equal(t, c.ResumeID, favs[0].Favorite.ResumeID, "defaults to the latest resume")

	is, err := svc.IsFavorite(ctx, hrActor, c.UserID)
	require.NoError(t, err)
	assert.True(t, is)

	require.NoError(t, svc.RemoveFavorite(ctx, hrActor, c.UserID))
	require.NoError(t, svc.RemoveFavorite(ctx, hrActor, c.UserID), "removing twice is not an error")
	is, err = svc.IsFavorite(ctx, hrActor, c.UserID)
	require.NoError(t, err)
	assert.False(t, is)
}

func TestFavoriteUnknownCandidate(t *testing.T) {
	svc := NewService(newMemRepo(), memResumes{}, memInterviews{}, nil)

	_, err := svc.ToggleFavorite(context.Background(), hrActor, uuid.New(), nil, "")

	assert.ErrorIs(t, err, ErrCandidateNotFound)
}

func TestFavoriteRejectsAnotherCandidatesResume(t *testing.T) {
	alice := cand("Алиса", "Аналитик", nil, nil)
	bob := cand("Борис", "Разработчик", nil, nil)
	aliceResume := resume.Resume{ID: uuid.New(), OwnerID: alice.UserID}
	bobResume := resume.Resume{ID: uuid.New(), OwnerID: bob.UserID}
	repo := newMemRepo(alice, bob)
	svc := NewService(repo, memResumes{byOwner: map[uuid.UUID][]resume.Resume{
		alice.UserID: {aliceResume},
		bob.UserID:   {bobResume},
	}}, memInterviews{}, nil)
	ctx := context.Background()

	_, err := svc.ToggleFavorite(ctx, hrActor, alice.UserID, &bobResume.ID, "")
	assert.ErrorIs(t, err, ErrForeignResume)
	is, err := svc.IsFavorite(ctx, hrActor, alice.UserID)
	require.NoError(t, err)
	assert.False(t, is)

	ok, err := svc.ToggleFavorite(ctx, hrActor, alice.UserID, &aliceResume.ID, "")
	require.NoError(t, err)
	assert.True(t, ok)
	favs, err := svc.ListFavorites(ctx, hrActor)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, &aliceResume.ID, favs[0].Favorite.ResumeID)
}

func TestDirectoryIsHROnly(t *testing.T) {
	svc := NewService(newMemRepo(), memResumes{}, memInterviews{}, nil)
	ctx := context.Background()

	_, err := svc.ListCandidates(ctx, candidateActor, Filter{}, Sort{})
	assert.ErrorIs(t, err, ErrHROnly)
	_, err = svc.ToggleFavorite(ctx, candidateActor, uuid.New(), nil, "")
	assert.ErrorIs(t, err, ErrHROnly)
	_, err = svc.Analytics(ctx, candidateActor)
	assert.ErrorIs(t, err, ErrHROnly)
	_, err = svc.CandidateDetails(ctx, candidateActor, uuid.New())
	assert.ErrorIs(t, err, ErrHROnly)
}

func TestListCandidatesSearch(t *testing.T) {
	repo := newMemRepo(sample()...)
	svc := NewService(repo, memResumes{}, memInterviews{}, nil)

	got, err := svc.ListCandidates(context.Background(), hrActor, Filter{Search: "иВАН"}, Sort{By: SortRecency, Desc: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"Иван Иванов"}, names(got))

	_, err = svc.ListCandidates(context.Background(), hrActor, Filter{}, Sort{By: "salary"})
	assert.Error(t, err)
}

func TestCandidateDetails(t *testing.T) {
	c := cand("Иван Иванов", "Разработчик", ptr(90.0), ptr(day))
	rid := uuid.New()
	c.ResumeID = &rid
	res := memResumes{
		byOwner:  map[uuid.UUID][]resume.Resume{c.UserID: {{ID: rid, OwnerID: c.UserID}}},
		analyses: map[uuid.UUID]resume.Analysis{rid: {ResumeID: rid, Score: 90}},
	}
	svc := NewService(newMemRepo(c), res, memInterviews{}, nil)

	d, err := svc.CandidateDetails(context.Background(), hrActor, c.UserID)

	require.NoError(t, err)
	assert.Len(t, d.Resumes, 1)
	require.NotNil(t, d.Analysis)
	assert.Equal(t, 90.0, d.Analysis.Score)
	assert.False(t, d.Favorite)
}

func TestCandidateStats(t *testing.T) {
	uid := candidateActor.UserID
	now := time.Now()
	res := memResumes{byOwner: map[uuid.UUID][]resume.Resume{uid: {{IsAnalyzed: true}, {IsAnalyzed: false}}}}
	ivs := memInterviews{
		{UserID: uid, TotalScore: 8.4, CreatedAt: now},
		{UserID: uid, TotalScore: 9.0, CreatedAt: now.Add(-time.Hour)},
		{UserID: uid, TotalScore: 6.0, CreatedAt: now.Add(-2 * time.Hour)},
		{UserID: uid, TotalScore: 7.0, CreatedAt: now.Add(-3 * time.Hour)},
		{UserID: uuid.New(), TotalScore: 1.0},
	}
	svc := NewService(newMemRepo(), res, ivs, nil)

	st, err := svc.CandidateStats(context.Background(), candidateActor)

	require.NoError(t, err)
	assert.Equal(t, 2, st.ResumesTotal)
	assert.Equal(t, 1, st.ResumesAnalyzed)
	assert.Equal(t, 4, st.Interviews)
	assert.Equal(t, 7.6, st.AverageInterview)
	assert.Len(t, st.RecentInterviews, 3)
}
