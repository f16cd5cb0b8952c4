package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

type portfolioMocks struct {
	profile     *MockProfileRepository
	project     *MockProjectRepository
	education   *MockEducationRepository
	certificate *MockCertificateRepository
	soft        *MockSkillRepository
	hard        *MockSkillRepository
	software    *MockSoftwareSkillRepository
}

func newPortfolioService(t *testing.T) (PortfolioService, *portfolioMocks) {
	t.Helper()
	m := &portfolioMocks{
		profile:     new(MockProfileRepository),
		project:     new(MockProjectRepository),
		education:   new(MockEducationRepository),
		certificate: new(MockCertificateRepository),
		soft:        new(MockSkillRepository),
		hard:        new(MockSkillRepository),
		software:    new(MockSoftwareSkillRepository),
	}
	// nil cache degrades to a pass-through, same as an unreachable Redis
	svc := NewPortfolioService(m.profile, m.project, m.education, m.certificate, m.soft, m.hard, m.software, nil)
	return svc, m
}

func (m *portfolioMocks) expectEmptyFetches() {
	m.profile.On("FindProfile", mock.Anything).Return(nil, nil)
	m.profile.On("FindContent", mock.Anything).Return(nil, nil)
	m.project.On("List", mock.Anything).Return([]model.ProjectDoc{}, nil)
	m.education.On("List", mock.Anything).Return([]model.EducationDoc{}, nil)
	m.certificate.On("List", mock.Anything).Return([]model.CertificateDoc{}, nil)
	m.soft.On("List", mock.Anything).Return([]model.SkillDoc{}, nil)
	m.hard.On("List", mock.Anything).Return([]model.SkillDoc{}, nil)
	m.software.On("List", mock.Anything).Return([]model.SoftwareSkillDoc{}, nil)
}

func TestPortfolioService_LoadContent_EmptyStore(t *testing.T) {
	svc, m := newPortfolioService(t)
	m.expectEmptyFetches()

	// Empty collections and absent documents are not an error: the
	// documented placeholders fill every field.
	p, err := svc.LoadContent(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Portfolio", p.Name)
	assert.Equal(t, "Developer", p.Title.Get(model.LocaleEN))
	assert.Equal(t, "Tentang saya", p.About.Get(model.LocaleID))
	assert.Equal(t, "/cv.pdf", p.CVURL)
	assert.Equal(t, "contact@example.com", p.Contact.Email)
	assert.Empty(t, p.Projects)
	assert.Empty(t, p.Education)
	assert.Empty(t, p.Certificates)
	assert.Empty(t, p.SoftSkills)
	assert.Empty(t, p.HardSkills)
	assert.Empty(t, p.SoftwareSkills)
}

func TestPortfolioService_LoadContent_Assembles(t *testing.T) {
	svc, m := newPortfolioService(t)

	m.profile.On("FindProfile", mock.Anything).Return(&model.ProfileDoc{
		Name:    "Jane",
		Contact: &model.ContactDoc{Email: "jane@example.com", LinkedIn: "in/jane"},
	}, nil)
	m.profile.On("FindContent", mock.Anything).Return(&model.ProfileDoc{
		Title: model.NewLocalized("Insinyur", "Engineer"),
	}, nil)
	m.project.On("List", mock.Anything).Return([]model.ProjectDoc{{Name: "Legacy"}}, nil)
	m.education.On("List", mock.Anything).Return([]model.EducationDoc{}, nil)
	m.certificate.On("List", mock.Anything).Return([]model.CertificateDoc{}, nil)
	m.soft.On("List", mock.Anything).Return([]model.SkillDoc{{Name: "Teamwork"}}, nil)
	m.hard.On("List", mock.Anything).Return([]model.SkillDoc{{Skill: "Go"}}, nil)
	m.software.On("List", mock.Anything).Return([]model.SoftwareSkillDoc{}, nil)

	p, err := svc.LoadContent(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Jane", p.Name)
	assert.Equal(t, "jane@example.com", p.Contact.Email)
	// profile has no title, so the content document's entry applies
	assert.Equal(t, "Engineer", p.Title.Get(model.LocaleEN))
	require.Len(t, p.Projects, 1)
	assert.Equal(t, "Legacy", p.Projects[0].Title.Get(model.LocaleEN))
	assert.Equal(t, []string{"Teamwork"}, p.SoftSkills)
	assert.Equal(t, []string{"Go"}, p.HardSkills)
}

func TestPortfolioService_LoadContent_FetchFailureIsAggregate(t *testing.T) {
	svc, m := newPortfolioService(t)

	m.profile.On("FindProfile", mock.Anything).Return(nil, nil)
	m.profile.On("FindContent", mock.Anything).Return(nil, nil)
	m.project.On("List", mock.Anything).Return(nil, errors.New("connection reset"))
	m.education.On("List", mock.Anything).Return([]model.EducationDoc{}, nil)
	m.certificate.On("List", mock.Anything).Return([]model.CertificateDoc{}, nil)
	m.soft.On("List", mock.Anything).Return([]model.SkillDoc{}, nil)
	m.hard.On("List", mock.Anything).Return([]model.SkillDoc{}, nil)
	m.software.On("List", mock.Anything).Return([]model.SoftwareSkillDoc{}, nil)

	// A single failed fetch fails the whole load: no partial content.
	p, err := svc.LoadContent(context.Background())
	assert.Nil(t, p)
	assert.ErrorIs(t, err, apperrors.ErrContentUnavailable)
}

func TestPortfolioService_AddProject(t *testing.T) {
	svc, m := newPortfolioService(t)

	project := model.Project{Title: model.NewLocalized("Proyek", "Project")}
	m.project.On("Insert", mock.Anything, project).Return("6577a0000000000000000001", nil)

	created, err := svc.AddProject(context.Background(), project)
	require.NoError(t, err)
	assert.Equal(t, "6577a0000000000000000001", created.ID)
	m.project.AssertExpectations(t)
}

func TestPortfolioService_UpdateProject_NotFound(t *testing.T) {
	svc, m := newPortfolioService(t)

	m.project.On("Update", mock.Anything, "missing", mock.Anything).Return(apperrors.ErrNotFound)

	err := svc.UpdateProject(context.Background(), "missing", model.Project{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPortfolioService_Skills(t *testing.T) {
	svc, m := newPortfolioService(t)

	m.soft.On("Insert", mock.Anything, "Teamwork").Return("id1", nil)
	m.hard.On("Insert", mock.Anything, "Go").Return("id2", nil)
	m.software.On("Insert", mock.Anything, model.SoftwareSkill{Name: "Docker", IconURL: "/d.svg"}).Return("id3", nil)

	id, err := svc.AddSoftSkill(context.Background(), "Teamwork")
	require.NoError(t, err)
	assert.Equal(t, "id1", id)

	id, err = svc.AddHardSkill(context.Background(), "Go")
	require.NoError(t, err)
	assert.Equal(t, "id2", id)

	skill, err := svc.AddSoftwareSkill(context.Background(), model.SoftwareSkill{Name: "Docker", IconURL: "/d.svg"})
	require.NoError(t, err)
	assert.Equal(t, "id3", skill.ID)
}

func TestPortfolioService_UpdateProfile(t *testing.T) {
	svc, m := newPortfolioService(t)

	doc := model.ProfileDoc{Name: "Jane"}
	m.profile.On("UpdateProfile", mock.Anything, doc).Return(nil)

	require.NoError(t, svc.UpdateProfile(context.Background(), doc))
	m.profile.AssertExpectations(t)
}

// Interface conformance for the mocks.
var (
	_ repository.ProfileRepository       = (*MockProfileRepository)(nil)
	_ repository.ProjectRepository       = (*MockProjectRepository)(nil)
	_ repository.EducationRepository     = (*MockEducationRepository)(nil)
	_ repository.CertificateRepository   = (*MockCertificateRepository)(nil)
	_ repository.SkillRepository         = (*MockSkillRepository)(nil)
	_ repository.SoftwareSkillRepository = (*MockSoftwareSkillRepository)(nil)
)
