package customerdir

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

func (s *ClientTestSuite) TestLookupCustomer() {
	type tcase struct {
		name        string
		username    string
		httpStatus  int
		contentType string
		wantView    *CustomerView
		wantErrType error
	}

	cases := []tcase{
		{
			name:        "valid request",
			username:    "alice",
			httpStatus:  http.StatusOK,
			contentType: "application/json",
			wantView: &CustomerView{
				ID:       1,
				Username: "alice",
				Wallet:   decimal.NewFromInt(500),
			},
		}, {
			name:        "customer not found",
			username:    "ghost",
			httpStatus:  http.StatusNotFound,
			wantErrType: new(StatusCodeError),
		}, {
			name:        "internal error",
			username:    "bob",
			httpStatus:  http.StatusInternalServerError,
			wantErrType: new(StatusCodeError),
		}, {
			name:        "html instead of json",
			username:    "carol",
			httpStatus:  http.StatusOK,
			contentType: "text/html",
			wantErrType: new(ContentTypeError),
		},
	}

	serverHandler := func(w http.ResponseWriter, r *http.Request) {
		var rc *tcase
		for _, c := range cases {
			if r.URL.Path == fmt.Sprintf(RouteCustomer, c.username) {
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
			view, err := client.LookupCustomer(s.T().Context(), t.username)

			if t.wantErrType != nil {
				s.Require().Error(err)
				s.Require().ErrorAs(err, &t.wantErrType) //nolint:testifylint
				return
			}
			s.Require().NoError(err)
			s.Require().NotNil(view)
			s.Equal(t.wantView.ID, view.ID)
			s.Equal(t.wantView.Username, view.Username)
			s.True(t.wantView.Wallet.Equal(view.Wallet))
		})
	}
}

// Токен вызывающего должен уходить дальше в заголовке Authorization.
func (s *ClientTestSuite) TestBearerForwarding() {
	var gotAuth string

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		s.NoError(json.NewEncoder(w).Encode(CustomerView{ID: 1, Username: "alice"}))
	}))

	client := New(s.server.URL)
	ctx := tokens.WithBearer(context.Background(), "token-123")

	_, err := client.LookupCustomer(ctx, "alice")

	s.Require().NoError(err)
	s.Equal("Bearer token-123", gotAuth)
}

func (s *ClientTestSuite) TestDebitWallet() {
	var gotBody map[string]decimal.Decimal
	var gotPath string

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		s.Equal(http.MethodPost, r.Method)
		s.NoError(json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		s.NoError(json.NewEncoder(w).Encode(map[string]string{"message": "ok"}))
	}))

	client := New(s.server.URL)
	err := client.DebitWallet(s.T().Context(), "alice", decimal.NewFromInt(100))

	s.Require().NoError(err)
	s.Equal(fmt.Sprintf(RouteWalletDeduct, "alice"), gotPath)
	s.True(decimal.NewFromInt(100).Equal(gotBody["amount"]))
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
