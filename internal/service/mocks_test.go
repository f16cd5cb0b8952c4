package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolio/internal/model"
)

// MockProfileRepository is a mock implementation of repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfile(ctx context.Context) (*model.ProfileDoc, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProfileDoc), args.Error(1)
}

func (m *MockProfileRepository) FindContent(ctx context.Context) (*model.ProfileDoc, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProfileDoc), args.Error(1)
}

func (m *MockProfileRepository) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, doc model.ProfileDoc) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// MockProjectRepository is a mock implementation of repository.ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) List(ctx context.Context) ([]model.ProjectDoc, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectDoc), args.Error(1)
}

func (m *MockProjectRepository) Insert(ctx context.Context, project model.Project) (string, error) {
	args := m.Called(ctx, project)
	return args.String(0), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, id string, project model.Project) error {
	args := m.Called(ctx, id, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEducationRepository is a mock implementation of repository.EducationRepository.
type MockEducationRepository struct {
	mock.Mock
}

func (m *MockEducationRepository) List(ctx context.Context) ([]model.EducationDoc, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EducationDoc), args.Error(1)
}

func (m *MockEducationRepository) Insert(ctx context.Context, item model.EducationItem) (string, error) {
	args := m.Called(ctx, item)
	return args.String(0), args.Error(1)
}

func (m *MockEducationRepository) Update(ctx context.Context, id string, item model.EducationItem) error {
	args := m.Called(ctx, id, item)
	return args.Error(0)
}

func (m *MockEducationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCertificateRepository is a mock implementation of repository.CertificateRepository.
type MockCertificateRepository struct {
	mock.Mock
}

func (m *MockCertificateRepository) List(ctx context.Context) ([]model.CertificateDoc, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CertificateDoc), args.Error(1)
}

func (m *MockCertificateRepository) Insert(ctx context.Context, cert model.Certificate) (string, error) {
	args := m.Called(ctx, cert)
	return args.String(0), args.Error(1)
}

func (m *MockCertificateRepository) Update(ctx context.Context, id string, cert model.Certificate) error {
	args := m.Called(ctx, id, cert)
	return args.Error(0)
}

func (m *MockCertificateRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSkillRepository is a mock implementation of repository.SkillRepository.
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) List(ctx context.Context) ([]model.SkillDoc, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SkillDoc), args.Error(1)
}

func (m *MockSkillRepository) Insert(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockSkillRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSoftwareSkillRepository is a mock implementation of repository.SoftwareSkillRepository.
type MockSoftwareSkillRepository struct {
	mock.Mock
}

func (m *MockSoftwareSkillRepository) List(ctx context.Context) ([]model.SoftwareSkillDoc, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SoftwareSkillDoc), args.Error(1)
}

func (m *MockSoftwareSkillRepository) Insert(ctx context.Context, skill model.SoftwareSkill) (string, error) {
	args := m.Called(ctx, skill)
	return args.String(0), args.Error(1)
}

func (m *MockSoftwareSkillRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
