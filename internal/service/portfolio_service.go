package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"portfolio/internal/cache"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const (
	portfolioCacheKey = "portfolio:content"
	portfolioCacheTTL = 5 * time.Minute
)

// PortfolioService assembles the canonical content model and applies admin
// mutations. Each entity family is independently consistent; mutations
// carry no cross-collection atomicity.
type PortfolioService interface {
	LoadContent(ctx context.Context) (*model.Portfolio, error)

	UpdateProfile(ctx context.Context, doc model.ProfileDoc) error

	AddProject(ctx context.Context, project model.Project) (*model.Project, error)
	UpdateProject(ctx context.Context, id string, project model.Project) error
	DeleteProject(ctx context.Context, id string) error

	AddEducation(ctx context.Context, item model.EducationItem) (*model.EducationItem, error)
	UpdateEducation(ctx context.Context, id string, item model.EducationItem) error
	DeleteEducation(ctx context.Context, id string) error

	AddCertificate(ctx context.Context, cert model.Certificate) (*model.Certificate, error)
	UpdateCertificate(ctx context.Context, id string, cert model.Certificate) error
	DeleteCertificate(ctx context.Context, id string) error

	AddSoftSkill(ctx context.Context, name string) (string, error)
	DeleteSoftSkill(ctx context.Context, id string) error
	AddHardSkill(ctx context.Context, name string) (string, error)
	DeleteHardSkill(ctx context.Context, id string) error
	AddSoftwareSkill(ctx context.Context, skill model.SoftwareSkill) (*model.SoftwareSkill, error)
	DeleteSoftwareSkill(ctx context.Context, id string) error
}

type portfolioService struct {
	profileRepo     repository.ProfileRepository
	projectRepo     repository.ProjectRepository
	educationRepo   repository.EducationRepository
	certificateRepo repository.CertificateRepository
	softSkillRepo   repository.SkillRepository
	hardSkillRepo   repository.SkillRepository
	softwareRepo    repository.SoftwareSkillRepository
	cache           *cache.Client
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(
	profileRepo repository.ProfileRepository,
	projectRepo repository.ProjectRepository,
	educationRepo repository.EducationRepository,
	certificateRepo repository.CertificateRepository,
	softSkillRepo repository.SkillRepository,
	hardSkillRepo repository.SkillRepository,
	softwareRepo repository.SoftwareSkillRepository,
	cacheClient *cache.Client,
) PortfolioService {
	return &portfolioService{
		profileRepo:     profileRepo,
		projectRepo:     projectRepo,
		educationRepo:   educationRepo,
		certificateRepo: certificateRepo,
		softSkillRepo:   softSkillRepo,
		hardSkillRepo:   hardSkillRepo,
		softwareRepo:    softwareRepo,
		cache:           cacheClient,
	}
}

// LoadContent fetches the profile and content documents and the six list
// collections concurrently, then merges them into the canonical model.
// Absent documents fall back to defaults; any fetch failure aborts the
// whole load, so the caller gets complete content or none.
func (s *portfolioService) LoadContent(ctx context.Context) (*model.Portfolio, error) {
	if data, _ := s.cache.Get(ctx, portfolioCacheKey); data != nil {
		var cached model.Portfolio
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	var (
		profile   *model.ProfileDoc
		content   *model.ProfileDoc
		projects  []model.ProjectDoc
		education []model.EducationDoc
		certs     []model.CertificateDoc
		soft      []model.SkillDoc
		hard      []model.SkillDoc
		software  []model.SoftwareSkillDoc
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { profile, err = s.profileRepo.FindProfile(gctx); return })
	g.Go(func() (err error) { content, err = s.profileRepo.FindContent(gctx); return })
	g.Go(func() (err error) { projects, err = s.projectRepo.List(gctx); return })
	g.Go(func() (err error) { education, err = s.educationRepo.List(gctx); return })
	g.Go(func() (err error) { certs, err = s.certificateRepo.List(gctx); return })
	g.Go(func() (err error) { soft, err = s.softSkillRepo.List(gctx); return })
	g.Go(func() (err error) { hard, err = s.hardSkillRepo.List(gctx); return })
	g.Go(func() (err error) { software, err = s.softwareRepo.List(gctx); return })
	if err := g.Wait(); err != nil {
		log.Printf("load content: %v", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrContentUnavailable, err)
	}

	portfolio := mergePortfolio(profile, content)
	portfolio.SoftSkills = skillNames(soft)
	portfolio.HardSkills = skillNames(hard)
	portfolio.SoftwareSkills = normalizeSoftwareSkills(software)
	portfolio.Projects = normalizeProjects(projects)
	portfolio.Education = normalizeEducation(education)
	portfolio.Certificates = normalizeCertificates(certs)

	if payload, err := json.Marshal(&portfolio); err == nil {
		_ = s.cache.Set(ctx, portfolioCacheKey, payload, portfolioCacheTTL)
	}

	return &portfolio, nil
}

func (s *portfolioService) invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, portfolioCacheKey)
}

// UpdateProfile writes the provided fields into the profile settings
// document. Profile takes precedence in the merge, so edits are always
// visible on the next load.
func (s *portfolioService) UpdateProfile(ctx context.Context, doc model.ProfileDoc) error {
	if err := s.profileRepo.UpdateProfile(ctx, doc); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *portfolioService) AddProject(ctx context.Context, project model.Project) (*model.Project, error) {
	id, err := s.projectRepo.Insert(ctx, project)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	project.ID = id
	return &project, nil
}

func (s *portfolioService) UpdateProject(ctx context.Context, id string, project model.Project) error {
	if err := s.projectRepo.Update(ctx, id, project); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *portfolioService) DeleteProject(ctx context.Context, id string) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *portfolioService) AddEducation(ctx context.Context, item model.EducationItem) (*model.EducationItem, error) {
	id, err := s.educationRepo.Insert(ctx, item)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	item.ID = id
	return &item, nil
}

func (s *portfolioService) UpdateEducation(ctx context.Context, id string, item model.EducationItem) error {
	if err := s.educationRepo.Update(ctx, id, item); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *portfolioService) DeleteEducation(ctx context.Context, id string) error {
	if err := s.educationRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *portfolioService) AddCertificate(ctx context.Context, cert model.Certificate) (*model.Certificate, error) {
	id, err := s.certificateRepo.Insert(ctx, cert)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	cert.ID = id
	return &cert, nil
}

func (s *portfolioService) UpdateCertificate(ctx context.Context, id string, cert model.Certificate) error {
	if err := s.certificateRepo.Update(ctx, id, cert); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *portfolioService) DeleteCertificate(ctx context.Context, id string) error {
	if err := s.certificateRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *portfolioService) AddSoftSkill(ctx context.Context, name string) (string, error) {
	id, err := s.softSkillRepo.Insert(ctx, name)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	return id, nil
}

func (s *portfolioService) DeleteSoftSkill(ctx context.Context, id string) error {
	if err := s.softSkillRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *portfolioService) AddHardSkill(ctx context.Context, name string) (string, error) {
	id, err := s.hardSkillRepo.Insert(ctx, name)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	return id, nil
}

func (s *portfolioService) DeleteHardSkill(ctx context.Context, id string) error {
	if err := s.hardSkillRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *portfolioService) AddSoftwareSkill(ctx context.Context, skill model.SoftwareSkill) (*model.SoftwareSkill, error) {
	id, err := s.softwareRepo.Insert(ctx, skill)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	skill.ID = id
	return &skill, nil
}

func (s *portfolioService) DeleteSoftwareSkill(ctx context.Context, id string) error {
	if err := s.softwareRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
