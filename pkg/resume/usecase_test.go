package resume

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruit/pkg/apperrors"
	"github.com/artem13815/recruit/pkg/auth"
	"github.com/artem13815/recruit/pkg/classifier"
)

type memRepo struct {
	mu       sync.Mutex
	resumes  map[uuid.UUID]Resume
	analyses []Analysis
	failNext error
}

func newMemRepo() *memRepo { return &memRepo{resumes: map[uuid.UUID]Resume{}} }

func (m *memRepo) CreateWithAnalysis(_ context.Context, r Resume, a Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext != nil {
		return m.failNext
	}
	m.resumes[r.ID] = r
	m.analyses = append(m.analyses, a)
	return nil
}

func (m *memRepo) AppendAnalysis(_ context.Context, r Resume, a Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := a.CreatedAt
	for i := range m.analyses {
		if m.analyses[i].ResumeID == r.ID && m.analyses[i].SupersededAt == nil {
			m.analyses[i].SupersededAt = &now
		}
	}
	stored := m.resumes[r.ID]
	stored.DetectedPosition, stored.ExperienceLevel, stored.Skills = r.DetectedPosition, r.ExperienceLevel, r.Skills
	stored.AnalyzedAt = r.AnalyzedAt
	m.resumes[r.ID] = stored
	m.analyses = append(m.analyses, a)
	return nil
}

func (m *memRepo) Get(_ context.Context, id uuid.UUID) (Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	r.RawBytes = nil
	return r, nil
}

func (m *memRepo) GetFile(_ context.Context, id uuid.UUID) (Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return r, nil
}

func (m *memRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Resume
	for _, r := range m.resumes {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) CurrentAnalysis(_ context.Context, resumeID uuid.UUID) (Analysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.analyses {
		if a.ResumeID == resumeID && a.SupersededAt == nil {
			return a, nil
		}
	}
	return Analysis{}, ErrNoAnalysis
}

func (m *memRepo) ListAnalyses(_ context.Context, resumeID uuid.UUID) ([]Analysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Analysis
	for _, a := range m.analyses {
		if a.ResumeID == resumeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func newTestService(repo Repository) UseCase {
	return NewService(repo, classifier.NewHeuristic(classifier.DefaultRules(), 42, nil), 1<<20, nil)
}

var (
	candidate = auth.Actor{UserID: uuid.New(), Role: auth.RoleCandidate}
	hr        = auth.Actor{UserID: uuid.New(), Role: auth.RoleHR}
)

const demoText = `Иван Иванов
Python Разработчик
Опыт работы: Middle Python Developer в TechCompany (2 года)
Навыки: Python, Django, SQL, PostgreSQL, Git, Docker, Linux
Образование: МГТУ им. Баумана`

func TestSubmitTextStoresResumeAndAnalysis(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	sub, err := svc.SubmitText(context.Background(), candidate, "", demoText)

	require.NoError(t, err)
	assert.Equal(t, "resume.txt", sub.Resume.Filename)
	assert.True(t, sub.Resume.IsAnalyzed)
	assert.Equal(t, "Разработчик", sub.Resume.DetectedPosition)
	assert.Equal(t, "Middle", sub.Resume.ExperienceLevel)
	assert.Equal(t, sub.Resume.ID, sub.Analysis.ResumeID)
	assert.Equal(t, candidate.UserID, sub.Analysis.OwnerID)
	assert.Equal(t, sub.Analysis.Score, sub.Analysis.RawPayload["score"])
	require.Len(t, repo.analyses, 1)
	assert.Equal(t, []byte(demoText), repo.resumes[sub.Resume.ID].RawBytes)
}

func TestSubmitValidation(t *testing.T) {
	svc := newTestService(newMemRepo())

	_, err := svc.SubmitText(context.Background(), candidate, "x.txt", "   ")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = svc.Submit(context.Background(), candidate, Upload{Filename: "cv.pdf"})
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = svc.Submit(context.Background(), candidate, Upload{Filename: "cv.exe", Data: []byte("MZ")})
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = svc.Submit(context.Background(), candidate, Upload{Filename: "cv.txt", Data: make([]byte, 2<<20)})
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = svc.SubmitText(context.Background(), hr, "x.txt", demoText)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestUnreadableUploadDegradesButIsStored(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	sub, err := svc.Submit(context.Background(), candidate, Upload{Filename: "broken.pdf", Data: []byte("not a pdf")})

	require.NoError(t, err)
	assert.Equal(t, classifier.VerdictError, sub.Analysis.Verdict)
	assert.Equal(t, 50.0, sub.Analysis.Score)
	assert.True(t, strings.HasPrefix(sub.Resume.ExtractedText, classifier.UnreadableText))
	assert.True(t, sub.Resume.IsAnalyzed)
}

func TestStorageFailurePropagates(t *testing.T) {
	repo := newMemRepo()
	repo.failNext = apperrors.Storage("resume", assert.AnError)
	svc := newTestService(repo)

	_, err := svc.SubmitText(context.Background(), candidate, "", demoText)

	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))
	assert.Empty(t, repo.resumes)
}

func TestReanalyzeAppendsAndSupersedes(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	sub, err := svc.SubmitText(context.Background(), candidate, "", demoText)
	require.NoError(t, err)

	a, err := svc.Reanalyze(context.Background(), candidate, sub.Resume.ID)
	require.NoError(t, err)

	all, err := svc.Analyses(context.Background(), candidate, sub.Resume.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.NotNil(t, all[0].SupersededAt)
	assert.Nil(t, all[1].SupersededAt)

	d, err := svc.Get(context.Background(), candidate, sub.Resume.ID)
	require.NoError(t, err)
	require.NotNil(t, d.Analysis)
	assert.Equal(t, a.ID, d.Analysis.ID)
}

func TestOwnershipRules(t *testing.T) {
	svc := newTestService(newMemRepo())
	sub, err := svc.SubmitText(context.Background(), candidate, "cv.txt", demoText)
	require.NoError(t, err)
	other := auth.Actor{UserID: uuid.New(), Role: auth.RoleCandidate}

	_, err = svc.Get(context.Background(), other, sub.Resume.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Download(context.Background(), other, sub.Resume.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	f, err := svc.Download(context.Background(), hr, sub.Resume.ID)
	require.NoError(t, err)
	assert.Equal(t, "cv.txt", f.Filename)
	assert.Equal(t, MimeText, f.MimeType)
	assert.Equal(t, []byte(demoText), f.Data)
}

func docx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractText(t *testing.T) {
	doc := docx(t, `<w:document><w:body><w:p><w:r><w:t>Опыт работы</w:t></w:r></w:p><w:p><w:r><w:t>Образование</w:t></w:r></w:p></w:body></w:document>`)

	assert.Equal(t, "Опыт работы \n Образование", ExtractText("cv.docx", "", doc))
	assert.Equal(t, "hello world", ExtractText("", "text/plain", []byte("  hello \t world \n\n")))
	assert.True(t, strings.HasPrefix(ExtractText("cv.pdf", MimePDF, []byte("%PDF-garbage")), classifier.UnreadableText))
	assert.True(t, strings.HasPrefix(ExtractText("cv.txt", "", []byte{0xff, 0xfe}), classifier.UnreadableText))
	assert.True(t, strings.HasPrefix(ExtractText("cv.bin", "", []byte("x")), classifier.UnreadableText))
}

func TestNewAnalysisSnapshotsResult(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	res := classifier.Result{Score: 88, Verdict: classifier.VerdictAuthentic, Position: "Аналитик", Flags: []string{"f"}, Recommendations: []string{"r"}, AnalyzedAt: at}
	rid, oid := uuid.New(), uuid.New()

	a := NewAnalysis(rid, oid, res, at)

	assert.Equal(t, rid, a.ResumeID)
	assert.Equal(t, oid, a.OwnerID)
	assert.Equal(t, 88.0, a.Score)
	assert.Equal(t, "Аналитик", a.RawPayload["detected_position"])
	assert.Nil(t, a.SupersededAt)
}
