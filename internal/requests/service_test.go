package requests

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"lifebank/internal/directory"
	"lifebank/internal/events"
	"lifebank/internal/storage"
	"lifebank/pkg/domain"
	dErrors "lifebank/pkg/domain-errors"
	"lifebank/pkg/requestcontext"
)

const (
	testAdmin    = "ADMIN_1"
	testHospital = "HOSP_GENERAL"
)

type ServiceSuite struct {
	suite.Suite
	service   *Service
	directory *directory.Service
	sink      *events.InMemorySink
	now       time.Time
}

func (s *ServiceSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := storage.NewInMemoryKV()

	s.directory = directory.NewService(directory.NewKVStore(kv), logger)
	adminCtx := requestcontext.WithCallerID(context.Background(), testAdmin)
	s.Require().NoError(s.directory.Initialize(adminCtx, testAdmin))
	s.Require().NoError(s.directory.Authorize(adminCtx, directory.RoleHospital, testHospital))

	s.sink = events.NewInMemorySink()
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.service = NewService(NewKVStore(kv), s.directory, events.NewPublisher(logger, s.sink), nil, logger)
}

func (s *ServiceSuite) ctx(caller string) context.Context {
	ctx := requestcontext.WithCallerID(context.Background(), caller)
	return requestcontext.WithTime(ctx, s.now)
}

// ctxAt is like ctx but with the clock moved.
func (s *ServiceSuite) ctxAt(caller string, at time.Time) context.Context {
	ctx := requestcontext.WithCallerID(context.Background(), caller)
	return requestcontext.WithTime(ctx, at)
}

func (s *ServiceSuite) params() CreateRequestParams {
	return CreateRequestParams{
		BloodType:       domain.BloodTypeAPositive,
		QuantityML:      900,
		Urgency:         domain.UrgencyNormal,
		RequiredBy:      s.now.Add(7 * 24 * time.Hour),
		DeliveryAddress: "1 Hospital Way",
	}
}

func (s *ServiceSuite) create() BloodRequest {
	req, err := s.service.Create(s.ctx(testHospital), s.params())
	s.Require().NoError(err)
	return req
}

func (s *ServiceSuite) TestCreateFirstRequest() {
	req := s.create()

	s.Equal(uint64(1), req.ID)
	s.Equal(domain.RequestStatusPending, req.Status)
	s.Equal(testHospital, req.HospitalID)
	s.Equal(s.now, req.CreatedAt)
	s.Nil(req.FulfilledAt)
	s.Empty(req.AssignedUnits)

	stored, err := s.service.Get(context.Background(), req.ID)
	s.Require().NoError(err)
	s.Equal(req, stored)

	created := s.sink.ByKind(events.KindRequestCreated)
	s.Require().Len(created, 1)
	payload, err := events.Decode[events.RequestCreated](created[0], events.KindRequestCreated)
	s.Require().NoError(err)
	s.Equal(req.ID, payload.RequestID)
	s.Equal(testHospital, payload.HospitalID)
}

func (s *ServiceSuite) TestFailedCreateDoesNotConsumeID() {
	s.create()

	bad := s.params()
	bad.QuantityML = 50
	_, err := s.service.Create(s.ctx(testHospital), bad)
	s.Equal(dErrors.CodeInvalidQuantity, dErrors.CodeOf(err))

	req := s.create()
	s.Equal(uint64(2), req.ID)
}

func (s *ServiceSuite) TestQuantityBoundaries() {
	for _, quantity := range []uint32{100, 10000} {
		p := s.params()
		p.QuantityML = quantity
		_, err := s.service.Create(s.ctx(testHospital), p)
		s.NoError(err, "quantity %d should be accepted", quantity)
	}
	for _, quantity := range []uint32{99, 10001} {
		p := s.params()
		p.QuantityML = quantity
		_, err := s.service.Create(s.ctx(testHospital), p)
		s.Equal(dErrors.CodeInvalidQuantity, dErrors.CodeOf(err), "quantity %d", quantity)
	}
}

func (s *ServiceSuite) TestUrgencyLeadTimeWindows() {
	critical := s.params()
	critical.Urgency = domain.UrgencyCritical
	critical.RequiredBy = s.now.Add(30 * time.Minute)
	_, err := s.service.Create(s.ctx(testHospital), critical)
	s.Equal(dErrors.CodeInvalidRequiredBy, dErrors.CodeOf(err))

	critical.RequiredBy = s.now.Add(2 * time.Hour)
	_, err = s.service.Create(s.ctx(testHospital), critical)
	s.NoError(err)

	normal := s.params()
	normal.RequiredBy = s.now.Add(12 * time.Hour)
	_, err = s.service.Create(s.ctx(testHospital), normal)
	s.Equal(dErrors.CodeInvalidRequiredBy, dErrors.CodeOf(err))

	normal.RequiredBy = s.now.Add(31 * 24 * time.Hour)
	_, err = s.service.Create(s.ctx(testHospital), normal)
	s.Equal(dErrors.CodeInvalidRequiredBy, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestEmptyDeliveryAddressRejected() {
	p := s.params()
	p.DeliveryAddress = ""
	_, err := s.service.Create(s.ctx(testHospital), p)
	s.Equal(dErrors.CodeInvalidDeliveryAddress, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestCreateRequiresAllowListedHospital() {
	_, err := s.service.Create(s.ctx("HOSP_UNKNOWN"), s.params())
	s.Equal(dErrors.CodeNotAuthorizedHospital, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestApprove() {
	req := s.create()

	approved, err := s.service.Approve(s.ctx(testAdmin), req.ID)
	s.Require().NoError(err)
	s.Equal(domain.RequestStatusApproved, approved.Status)

	changed := s.sink.ByKind(events.KindStatusChanged)
	s.Require().Len(changed, 1)
	payload, err := events.Decode[events.StatusChanged](changed[0], events.KindStatusChanged)
	s.Require().NoError(err)
	s.Equal(domain.RequestStatusPending, payload.OldStatus)
	s.Equal(domain.RequestStatusApproved, payload.NewStatus)
}

func (s *ServiceSuite) TestApproveRequiresAdmin() {
	req := s.create()

	_, err := s.service.Approve(s.ctx(testHospital), req.ID)
	s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestApproveUnknownRequest() {
	_, err := s.service.Approve(s.ctx(testAdmin), 42)
	s.Equal(dErrors.CodeNotFound, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestApprovePastDeadlineFailsExpired() {
	req := s.create()

	late := req.RequiredBy.Add(time.Hour)
	_, err := s.service.Approve(s.ctxAt(testAdmin, late), req.ID)
	s.Equal(dErrors.CodeExpired, dErrors.CodeOf(err))

	// Cancellation ignores the deadline.
	cancelled, err := s.service.Cancel(s.ctxAt(testHospital, late), req.ID)
	s.Require().NoError(err)
	s.Equal(domain.RequestStatusCancelled, cancelled.Status)
}

func (s *ServiceSuite) TestApproveFromTerminalFailsTransition() {
	req := s.create()
	_, err := s.service.Cancel(s.ctx(testHospital), req.ID)
	s.Require().NoError(err)

	_, err = s.service.Approve(s.ctx(testAdmin), req.ID)
	s.Equal(dErrors.CodeInvalidStatusTransition, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestCancelByAdminAndByHospital() {
	first := s.create()
	second := s.create()

	_, err := s.service.Cancel(s.ctx(testHospital), first.ID)
	s.NoError(err)
	_, err = s.service.Cancel(s.ctx(testAdmin), second.ID)
	s.NoError(err)
}

func (s *ServiceSuite) TestCancelByStrangerFails() {
	req := s.create()

	_, err := s.service.Cancel(s.ctx("HOSP_OTHER"), req.ID)
	s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestCancelTwiceFails() {
	req := s.create()
	_, err := s.service.Cancel(s.ctx(testHospital), req.ID)
	s.Require().NoError(err)

	_, err = s.service.Cancel(s.ctx(testHospital), req.ID)
	s.Equal(dErrors.CodeCannotCancel, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestStatusBucketsAfterTransition() {
	first := s.create()
	second := s.create()

	_, err := s.service.Approve(s.ctx(testAdmin), first.ID)
	s.Require().NoError(err)

	pending, err := s.service.IDsByStatus(context.Background(), domain.RequestStatusPending)
	s.Require().NoError(err)
	s.Equal([]uint64{second.ID}, pending)

	approved, err := s.service.IDsByStatus(context.Background(), domain.RequestStatusApproved)
	s.Require().NoError(err)
	s.Equal([]uint64{first.ID}, approved)
}

func (s *ServiceSuite) TestListIndexesFollowCreationOrder() {
	other := "HOSP_NORTH"
	s.Require().NoError(s.directory.Authorize(s.ctx(testAdmin), directory.RoleHospital, other))

	s.create()
	urgent := s.params()
	urgent.Urgency = domain.UrgencyUrgent
	urgent.RequiredBy = s.now.Add(6 * time.Hour)
	_, err := s.service.Create(s.ctx(other), urgent)
	s.Require().NoError(err)
	s.create()

	byHospital, err := s.service.IDsByHospital(context.Background(), testHospital)
	s.Require().NoError(err)
	s.Equal([]uint64{1, 3}, byHospital)

	byType, err := s.service.IDsByBloodType(context.Background(), domain.BloodTypeAPositive)
	s.Require().NoError(err)
	s.Equal([]uint64{1, 2, 3}, byType)

	byUrgency, err := s.service.IDsByUrgency(context.Background(), domain.UrgencyUrgent)
	s.Require().NoError(err)
	s.Equal([]uint64{2}, byUrgency)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}
