//go:build unit

package api_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"fleetbook/internal/handler/api"
	"fleetbook/internal/usecase/queries"
	"fleetbook/tests/common/builder"
	"fleetbook/tests/common/httptest"
	queriesmock "fleetbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VehicleHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockVehicleQueries
	handler     *api.VehicleHandler
}

func (s *VehicleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockVehicleQueries(s.mockCtrl)
	s.handler = api.NewVehicleHandler(s.mockQueries)

	s.router.GET("/vehicles", s.handler.List)
	s.router.GET("/vehicles/availability", s.handler.Availability)
}

func (s *VehicleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVehicleHandlerSuite(t *testing.T) {
	suite.Run(t, new(VehicleHandlerTestSuite))
}

func (s *VehicleHandlerTestSuite) TestList() {
	items := []*queries.VehicleListItem{
		builder.NewVehicleBuilder().WithName("Compact Sedan").BuildListItem(),
		builder.NewVehicleBuilder().WithName("Cargo Van").BuildListItem(),
	}
	s.mockQueries.EXPECT().List(gomock.Any()).Return(items, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles", nil, "")

	var body map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body["vehicles"], 2)
}

func (s *VehicleHandlerTestSuite) TestAvailability() {
	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	baseQuery := url.Values{
		"starts_at": {start.Format(time.RFC3339)},
		"ends_at":   {end.Format(time.RFC3339)},
	}

	s.Run("success: returns the free vehicles", func() {
		items := []*queries.VehicleListItem{builder.NewVehicleBuilder().BuildListItem()}
		s.mockQueries.EXPECT().
			Available(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/availability?"+baseQuery.Encode(), nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body["vehicles"], 1)
	})

	s.Run("success: vehicle_ids narrows the candidates", func() {
		id1, id2 := uuid.New(), uuid.New()
		q := url.Values{}
		for k, v := range baseQuery {
			q[k] = v
		}
		q.Set("vehicle_ids", id1.String()+","+id2.String())

		s.mockQueries.EXPECT().
			Available(gomock.Any(), gomock.Any(), gomock.Any(), []uuid.UUID{id1, id2}).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/availability?"+q.Encode(), nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on a malformed timestamp", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/availability?starts_at=tomorrow&ends_at=later", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on a malformed vehicle id", func() {
		q := url.Values{}
		for k, v := range baseQuery {
			q[k] = v
		}
		q.Set("vehicle_ids", "not-a-uuid")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/availability?"+q.Encode(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on an inverted window", func() {
		s.mockQueries.EXPECT().
			Available(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(nil, queries.ErrInvalidRange).Times(1)

		q := url.Values{
			"starts_at": {end.Format(time.RFC3339)},
			"ends_at":   {start.Format(time.RFC3339)},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/availability?"+q.Encode(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid window")
	})
}
