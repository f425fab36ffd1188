package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/atharv2608/alphaware-task-backend/internal/errors"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/domain"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/dto"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/service"
	"github.com/atharv2608/alphaware-task-backend/internal/mocks"
	"github.com/atharv2608/alphaware-task-backend/pkg/constant"
)

var (
	adminActor = domain.AuthContext{
		User:    &domain.User{ID: "admin-1", FirstName: "Ada", LastName: "Admin", Email: "ada@alphaware.com", Phone: "111", Role: constant.RoleAdmin},
		IsAdmin: true,
	}
	otherAdminActor = domain.AuthContext{
		User:    &domain.User{ID: "admin-2", FirstName: "Bob", LastName: "Boss", Email: "bob@alphaware.com", Phone: "222", Role: constant.RoleAdmin},
		IsAdmin: true,
	}
	userActor = domain.AuthContext{
		User:    &domain.User{ID: "user-1", FirstName: "Uma", LastName: "User", Email: "uma@example.com", Phone: "333", Role: constant.RoleUser},
		IsAdmin: false,
	}
)

func newJobService(t *testing.T) (*service.JobService, *mocks.MockJobRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockJobs := mocks.NewMockJobRepository(ctrl)

	return service.NewJobService(mockJobs, zerolog.Nop()), mockJobs
}

func validPostInput() dto.PostJobInput {
	return dto.PostJobInput{
		CompanyName: "Alphaware",
		Position:    "Backend Engineer",
		Contract:    constant.ContractFullTime,
		Location:    "Pune",
	}
}

func TestJobService_Post_Success(t *testing.T) {
	s, mockJobs := newJobService(t)

	var created domain.Job
	mockJobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, j *domain.Job) error {
			created = *j
			return nil
		})

	job, err := s.Post(context.Background(), adminActor, validPostInput())

	require.NoError(t, err)
	require.NotNil(t, job)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, adminActor.User.ID, job.PostedBy)
	assert.Equal(t, created.ID, job.ID)
}

func TestJobService_Post_NonAdminForbidden(t *testing.T) {
	s, _ := newJobService(t)

	job, err := s.Post(context.Background(), userActor, validPostInput())

	assert.ErrorIs(t, err, apperr.ErrAdminOnly)
	assert.Nil(t, job)
}

func TestJobService_Post_BlankFields(t *testing.T) {
	s, _ := newJobService(t)

	input := validPostInput()
	input.Location = "   "

	job, err := s.Post(context.Background(), adminActor, input)

	assert.ErrorIs(t, err, apperr.ErrMissingFields)
	assert.Nil(t, job)
}

func TestJobService_Post_InvalidContract(t *testing.T) {
	s, _ := newJobService(t)

	input := validPostInput()
	input.Contract = "Freelance"

	job, err := s.Post(context.Background(), adminActor, input)

	assert.ErrorIs(t, err, apperr.ErrInvalidContract)
	assert.Nil(t, job)
}

func TestJobService_Edit_Success(t *testing.T) {
	s, mockJobs := newJobService(t)

	existing := &domain.Job{ID: "job-1", CompanyName: "Old", Position: "Old", Contract: constant.ContractFullTime, Location: "Old", PostedBy: adminActor.User.ID}
	mockJobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(existing, nil)
	mockJobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, j *domain.Job) error {
			assert.Equal(t, adminActor.User.ID, j.PostedBy)
			return nil
		})

	job, err := s.Edit(context.Background(), adminActor, dto.EditJobInput{
		JobID:       "job-1",
		CompanyName: "Alphaware",
		Position:    "Platform Engineer",
		Contract:    constant.ContractPartTime,
		Location:    "Remote",
	})

	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", job.Position)
	assert.Equal(t, constant.ContractPartTime, job.Contract)
}

func TestJobService_Edit_NotFound(t *testing.T) {
	s, mockJobs := newJobService(t)

	mockJobs.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

	job, err := s.Edit(context.Background(), adminActor, dto.EditJobInput{
		JobID:       "missing",
		CompanyName: "Alphaware",
		Position:    "Engineer",
		Contract:    constant.ContractFullTime,
		Location:    "Pune",
	})

	assert.ErrorIs(t, err, apperr.ErrJobNotFound)
	assert.Nil(t, job)
}

func TestJobService_Edit_NotOwnerForbidden(t *testing.T) {
	s, mockJobs := newJobService(t)

	existing := &domain.Job{ID: "job-1", PostedBy: adminActor.User.ID}
	mockJobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(existing, nil)

	// A different admin: the job exists but ownership is the gate.
	job, err := s.Edit(context.Background(), otherAdminActor, dto.EditJobInput{
		JobID:       "job-1",
		CompanyName: "Alphaware",
		Position:    "Engineer",
		Contract:    constant.ContractFullTime,
		Location:    "Pune",
	})

	assert.ErrorIs(t, err, apperr.ErrNotJobOwner)
	assert.Nil(t, job)
}

func TestJobService_Delete_Success(t *testing.T) {
	s, mockJobs := newJobService(t)

	existing := &domain.Job{ID: "job-1", PostedBy: adminActor.User.ID}
	mockJobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(existing, nil)
	mockJobs.EXPECT().Delete(gomock.Any(), "job-1").Return(nil)

	assert.NoError(t, s.Delete(context.Background(), adminActor, "job-1"))
}

func TestJobService_Delete_NotOwnerForbidden(t *testing.T) {
	s, mockJobs := newJobService(t)

	existing := &domain.Job{ID: "job-1", PostedBy: adminActor.User.ID}
	mockJobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(existing, nil)

	err := s.Delete(context.Background(), otherAdminActor, "job-1")

	assert.ErrorIs(t, err, apperr.ErrNotJobOwner)
}

func TestJobService_Apply_Success(t *testing.T) {
	s, mockJobs := newJobService(t)

	job := &domain.Job{ID: "job-1", PostedBy: adminActor.User.ID}
	mockJobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	mockJobs.EXPECT().AddApplication(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, app *domain.Application) (bool, error) {
			assert.Equal(t, userActor.User.ID, app.ApplicantID)
			assert.Equal(t, "Uma User", app.ApplicantName)
			assert.Equal(t, userActor.User.Email, app.Email)
			assert.Equal(t, userActor.User.Phone, app.Phone)
			assert.Equal(t, "https://example.com/resume.pdf", app.ResumeURL)
			assert.WithinDuration(t, time.Now(), app.DateApplied, time.Second)
			return true, nil
		})

	app, err := s.Apply(context.Background(), userActor, dto.ApplyJobInput{
		JobID:     "job-1",
		ResumeURL: "https://example.com/resume.pdf",
	})

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, "job-1", app.JobID)
}

func TestJobService_Apply_DefaultResumeURL(t *testing.T) {
	s, mockJobs := newJobService(t)

	job := &domain.Job{ID: "job-1"}
	mockJobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	mockJobs.EXPECT().AddApplication(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, app *domain.Application) (bool, error) {
			assert.Equal(t, constant.DefaultResumeURL, app.ResumeURL)
			return true, nil
		})

	_, err := s.Apply(context.Background(), userActor, dto.ApplyJobInput{JobID: "job-1"})

	require.NoError(t, err)
}

func TestJobService_Apply_AdminForbidden(t *testing.T) {
	s, _ := newJobService(t)

	app, err := s.Apply(context.Background(), adminActor, dto.ApplyJobInput{JobID: "job-1"})

	assert.ErrorIs(t, err, apperr.ErrAdminCannotApply)
	assert.Nil(t, app)
}

func TestJobService_Apply_JobNotFound(t *testing.T) {
	s, mockJobs := newJobService(t)

	mockJobs.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

	app, err := s.Apply(context.Background(), userActor, dto.ApplyJobInput{JobID: "missing"})

	assert.ErrorIs(t, err, apperr.ErrJobNotFound)
	assert.Nil(t, app)
}

func TestJobService_Apply_AlreadyApplied(t *testing.T) {
	s, mockJobs := newJobService(t)

	job := &domain.Job{ID: "job-1"}
	mockJobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil).Times(2)
	gomock.InOrder(
		mockJobs.EXPECT().AddApplication(gomock.Any(), gomock.Any()).Return(true, nil),
		// The store reports the unique-constraint conflict as zero rows.
		mockJobs.EXPECT().AddApplication(gomock.Any(), gomock.Any()).Return(false, nil),
	)

	first, err := s.Apply(context.Background(), userActor, dto.ApplyJobInput{JobID: "job-1"})
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := s.Apply(context.Background(), userActor, dto.ApplyJobInput{JobID: "job-1"})
	assert.ErrorIs(t, err, apperr.ErrAlreadyApplied)
	assert.Nil(t, second)
}

func TestJobService_GetAll_AdminSeesOwnPostings(t *testing.T) {
	s, mockJobs := newJobService(t)

	own := []domain.Job{{ID: "job-1", PostedBy: adminActor.User.ID}}
	mockJobs.EXPECT().ListByPoster(gomock.Any(), adminActor.User.ID).Return(own, nil)

	jobs, err := s.GetAll(context.Background(), adminActor)

	require.NoError(t, err)
	assert.Equal(t, own, jobs)
}

func TestJobService_GetAll_UserSeesAll(t *testing.T) {
	s, mockJobs := newJobService(t)

	all := []domain.Job{{ID: "job-1"}, {ID: "job-2"}}
	mockJobs.EXPECT().ListAll(gomock.Any()).Return(all, nil)

	jobs, err := s.GetAll(context.Background(), userActor)

	require.NoError(t, err)
	assert.Equal(t, all, jobs)
}

func TestJobService_Applicants_Success(t *testing.T) {
	s, mockJobs := newJobService(t)

	job := &domain.Job{ID: "job-1", PostedBy: otherAdminActor.User.ID}
	apps := []domain.Application{{ID: "app-1", JobID: "job-1", ApplicantID: userActor.User.ID}}

	// Any admin may list applicants; there is no ownership check here.
	mockJobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	mockJobs.EXPECT().ListApplications(gomock.Any(), "job-1").Return(apps, nil)

	got, err := s.Applicants(context.Background(), adminActor, "job-1")

	require.NoError(t, err)
	assert.Equal(t, apps, got)
}

func TestJobService_Applicants_NonAdminForbidden(t *testing.T) {
	s, _ := newJobService(t)

	got, err := s.Applicants(context.Background(), userActor, "job-1")

	assert.ErrorIs(t, err, apperr.ErrAdminOnly)
	assert.Nil(t, got)
}
