package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"lifebank/internal/platform/middleware"
	"lifebank/internal/requests"
	"lifebank/internal/requests/handler/mocks"
	"lifebank/pkg/domain"
	dErrors "lifebank/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type staticValidator struct{ caller string }

func (v staticValidator) ValidateToken(string) (*middleware.Claims, error) {
	return &middleware.Claims{CallerID: v.caller}, nil
}

type RequestsHandlerSuite struct {
	suite.Suite
	router  chi.Router
	service *mocks.MockService
	now     time.Time
}

func (s *RequestsHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.router = chi.NewRouter()
	New(s.service, logger, nil, staticValidator{caller: "HOSP_GENERAL"}).Register(s.router)
}

func (s *RequestsHandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RequestsHandlerSuite) TestCreate() {
	requiredBy := s.now.Add(7 * 24 * time.Hour)
	s.service.EXPECT().Create(gomock.Any(), requests.CreateRequestParams{
		BloodType:       domain.BloodTypeAPositive,
		QuantityML:      900,
		Urgency:         domain.UrgencyNormal,
		RequiredBy:      requiredBy,
		DeliveryAddress: "1 Hospital Way",
	}).Return(requests.BloodRequest{
		ID:         1,
		HospitalID: "HOSP_GENERAL",
		Status:     domain.RequestStatusPending,
	}, nil)

	w := s.do(http.MethodPost, "/requests", createRequestRequest{
		BloodType:       "A+",
		QuantityML:      900,
		Urgency:         "normal",
		RequiredBy:      requiredBy,
		DeliveryAddress: "1 Hospital Way",
	})
	s.Equal(http.StatusCreated, w.Code)

	var created requests.BloodRequest
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.Equal(uint64(1), created.ID)
	s.Equal(domain.RequestStatusPending, created.Status)
}

func (s *RequestsHandlerSuite) TestCreateUnknownUrgency() {
	w := s.do(http.MethodPost, "/requests", createRequestRequest{
		BloodType:       "A+",
		QuantityML:      900,
		Urgency:         "whenever",
		RequiredBy:      s.now.Add(24 * time.Hour),
		DeliveryAddress: "1 Hospital Way",
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RequestsHandlerSuite) TestCreateEmptyAddress() {
	w := s.do(http.MethodPost, "/requests", createRequestRequest{
		BloodType:  "A+",
		QuantityML: 900,
		Urgency:    "normal",
		RequiredBy: s.now.Add(7 * 24 * time.Hour),
	})
	s.Equal(http.StatusBadRequest, w.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(string(dErrors.CodeInvalidDeliveryAddress), resp["code"])
}

func (s *RequestsHandlerSuite) TestApprove() {
	s.service.EXPECT().Approve(gomock.Any(), uint64(5)).
		Return(requests.BloodRequest{ID: 5, Status: domain.RequestStatusApproved}, nil)

	w := s.do(http.MethodPost, "/requests/5/approve", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RequestsHandlerSuite) TestApproveExpired() {
	s.service.EXPECT().Approve(gomock.Any(), uint64(5)).
		Return(requests.BloodRequest{}, dErrors.New(dErrors.CodeExpired, "request deadline has passed"))

	w := s.do(http.MethodPost, "/requests/5/approve", nil)
	s.Equal(http.StatusConflict, w.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(string(dErrors.CodeExpired), resp["code"])
}

func (s *RequestsHandlerSuite) TestCancel() {
	s.service.EXPECT().Cancel(gomock.Any(), uint64(5)).
		Return(requests.BloodRequest{ID: 5, Status: domain.RequestStatusCancelled}, nil)

	w := s.do(http.MethodPost, "/requests/5/cancel", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RequestsHandlerSuite) TestCancelForbiddenStatus() {
	s.service.EXPECT().Cancel(gomock.Any(), uint64(5)).
		Return(requests.BloodRequest{}, dErrors.New(dErrors.CodeCannotCancel, "cannot cancel a request in status completed"))

	w := s.do(http.MethodPost, "/requests/5/cancel", nil)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *RequestsHandlerSuite) TestGetNotFound() {
	s.service.EXPECT().Get(gomock.Any(), uint64(42)).
		Return(requests.BloodRequest{}, dErrors.New(dErrors.CodeNotFound, "key not found"))

	w := s.do(http.MethodGet, "/requests/42", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RequestsHandlerSuite) TestListByUrgency() {
	s.service.EXPECT().IDsByUrgency(gomock.Any(), domain.UrgencyCritical).
		Return([]uint64{4}, nil)

	w := s.do(http.MethodGet, "/requests?urgency=critical", nil)
	s.Equal(http.StatusOK, w.Code)

	var resp listResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal([]uint64{4}, resp.IDs)
}

func (s *RequestsHandlerSuite) TestListWithoutFilter() {
	w := s.do(http.MethodGet, "/requests", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestRequestsHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestsHandlerSuite))
}
