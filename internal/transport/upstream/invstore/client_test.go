package invstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fsdevblog/groph-shop/internal/tokens"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestGetItem() {
	type tcase struct {
		name        string
		itemID      int64
		httpStatus  int
		contentType string
		wantView    *ItemView
		wantErrType error
	}

	cases := []tcase{
		{
			name:        "valid request",
			itemID:      10,
			httpStatus:  http.StatusOK,
			contentType: "application/json",
			wantView: &ItemView{
				ID:           10,
				Name:         "Laptop",
				Category:     "electronics",
				Description:  "15 inch",
				PricePerItem: decimal.NewFromInt(999),
				StockCount:   5,
			},
		}, {
			name:        "item not found",
			itemID:      99,
			httpStatus:  http.StatusNotFound,
			wantErrType: new(StatusCodeError),
		}, {
			name:        "internal error",
			itemID:      11,
			httpStatus:  http.StatusInternalServerError,
			wantErrType: new(StatusCodeError),
		}, {
			name:        "html instead of json",
			itemID:      12,
			httpStatus:  http.StatusOK,
			contentType: "text/html",
			wantErrType: new(ContentTypeError),
		},
	}

	serverHandler := func(w http.ResponseWriter, r *http.Request) {
		var rc *tcase
		for _, c := range cases {
			if r.URL.Path == fmt.Sprintf(RouteItem, c.itemID) {
				rc = &c
				break
			}
		}
		s.Require().NotNilf(rc, "тест для пути %s не найден", r.URL.Path) //nolint:testifylint

		if rc.contentType != "" {
			w.Header().Set("Content-Type", rc.contentType)
		}
		w.WriteHeader(rc.httpStatus)

		if rc.wantView != nil {
			s.NoError(json.NewEncoder(w).Encode(rc.wantView))
		} else if rc.contentType == "text/html" {
			_, wErr := w.Write([]byte("<html></html>"))
			s.NoError(wErr)
		}
	}

	s.server = httptest.NewServer(http.HandlerFunc(serverHandler))

	for _, t := range cases {
		s.Run(t.name, func() {
			client := New(s.server.URL)
			view, err := client.GetItem(s.T().Context(), t.itemID)

			if t.wantErrType != nil {
				s.Require().Error(err)
				s.Require().ErrorAs(err, &t.wantErrType) //nolint:testifylint
				return
			}
			s.Require().NoError(err)
			s.Require().NotNil(view)
			s.Equal(t.wantView.ID, view.ID)
			s.Equal(t.wantView.Name, view.Name)
			s.Equal(t.wantView.StockCount, view.StockCount)
			s.True(t.wantView.PricePerItem.Equal(view.PricePerItem))
		})
	}
}

func (s *ClientTestSuite) TestRemoveStock() {
	var gotBody map[string]int
	var gotPath string
	var gotAuth string

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		s.Equal(http.MethodPost, r.Method)
		s.NoError(json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		s.NoError(json.NewEncoder(w).Encode(map[string]string{"message": "ok"}))
	}))

	client := New(s.server.URL)
	ctx := tokens.WithBearer(context.Background(), "token-123")

	err := client.RemoveStock(ctx, 10, 2)

	s.Require().NoError(err)
	s.Equal(fmt.Sprintf(RouteStockRemove, int64(10)), gotPath)
	s.Equal(2, gotBody["quantity"])
	s.Equal("Bearer token-123", gotAuth)
}

func (s *ClientTestSuite) TestHealth() {
	cases := []struct {
		name       string
		httpStatus int
		wantErr    bool
	}{
		{name: "healthy", httpStatus: http.StatusOK},
		{name: "unavailable", httpStatus: http.StatusServiceUnavailable, wantErr: true},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(t.httpStatus)
			}))
			defer server.Close()

			err := New(server.URL).Health(s.T().Context())

			if t.wantErr {
				s.Require().Error(err)
				var scErr *StatusCodeError
				s.Require().ErrorAs(err, &scErr)
				s.Equal(t.httpStatus, scErr.Code)
			} else {
				s.NoError(err)
			}
		})
	}
}
