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

	"lifebank/internal/inventory"
	"lifebank/internal/inventory/handler/mocks"
	"lifebank/internal/platform/middleware"
	"lifebank/pkg/domain"
	dErrors "lifebank/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type staticValidator struct{ caller string }

func (v staticValidator) ValidateToken(string) (*middleware.Claims, error) {
	return &middleware.Claims{CallerID: v.caller}, nil
}

type InventoryHandlerSuite struct {
	suite.Suite
	router  chi.Router
	service *mocks.MockService
	now     time.Time
}

func (s *InventoryHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.router = chi.NewRouter()
	New(s.service, logger, nil, staticValidator{caller: "BANK_CENTRAL"}).Register(s.router)
}

func (s *InventoryHandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
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

func (s *InventoryHandlerSuite) TestRegister() {
	expiration := s.now.Add(30 * 24 * time.Hour)
	s.service.EXPECT().Register(gomock.Any(), inventory.RegisterUnitParams{
		BloodType:           domain.BloodTypeONegative,
		QuantityML:          450,
		DonationTimestamp:   s.now,
		ExpirationTimestamp: expiration,
	}).Return(inventory.BloodUnit{
		ID:         1,
		BloodType:  domain.BloodTypeONegative,
		QuantityML: 450,
		BankID:     "BANK_CENTRAL",
		Status:     domain.UnitStatusAvailable,
	}, nil)

	w := s.do(http.MethodPost, "/units", registerUnitRequest{
		BloodType:           "O-",
		QuantityML:          450,
		DonationTimestamp:   s.now,
		ExpirationTimestamp: expiration,
	})
	s.Equal(http.StatusCreated, w.Code)

	var unit inventory.BloodUnit
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &unit))
	s.Equal(uint64(1), unit.ID)
	s.Equal(domain.UnitStatusAvailable, unit.Status)
}

func (s *InventoryHandlerSuite) TestRegisterUnknownBloodType() {
	w := s.do(http.MethodPost, "/units", registerUnitRequest{BloodType: "X-", QuantityML: 450})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *InventoryHandlerSuite) TestRegisterQuantityRejected() {
	s.service.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(inventory.BloodUnit{}, dErrors.New(dErrors.CodeInvalidQuantity, "unit quantity must be between 100 and 600 ml"))

	w := s.do(http.MethodPost, "/units", registerUnitRequest{
		BloodType:           "O-",
		QuantityML:          50,
		DonationTimestamp:   s.now,
		ExpirationTimestamp: s.now.Add(30 * 24 * time.Hour),
	})
	s.Equal(http.StatusBadRequest, w.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(string(dErrors.CodeInvalidQuantity), resp["code"])
}

func (s *InventoryHandlerSuite) TestGet() {
	s.service.EXPECT().Get(gomock.Any(), uint64(7)).
		Return(inventory.BloodUnit{ID: 7, BankID: "BANK_CENTRAL"}, nil)

	w := s.do(http.MethodGet, "/units/7", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *InventoryHandlerSuite) TestGetNotFound() {
	s.service.EXPECT().Get(gomock.Any(), uint64(42)).
		Return(inventory.BloodUnit{}, dErrors.New(dErrors.CodeNotFound, "key not found"))

	w := s.do(http.MethodGet, "/units/42", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *InventoryHandlerSuite) TestGetBadID() {
	w := s.do(http.MethodGet, "/units/abc", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *InventoryHandlerSuite) TestListByBloodType() {
	s.service.EXPECT().IDsByBloodType(gomock.Any(), domain.BloodTypeAPositive).
		Return([]uint64{1, 3}, nil)

	w := s.do(http.MethodGet, "/units?blood_type=A%2B", nil)
	s.Equal(http.StatusOK, w.Code)

	var resp listResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal([]uint64{1, 3}, resp.IDs)
}

func (s *InventoryHandlerSuite) TestListByStatus() {
	s.service.EXPECT().IDsByStatus(gomock.Any(), domain.UnitStatusAvailable).
		Return([]uint64{2}, nil)

	w := s.do(http.MethodGet, "/units?status=available", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *InventoryHandlerSuite) TestListWithoutFilter() {
	w := s.do(http.MethodGet, "/units", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerSuite))
}
