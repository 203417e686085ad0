package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/artjalyuzi/admin-panel/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceList_NonArrayPayloadCoercesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"unexpected shape"}`))
	}))
	defer srv.Close()

	gw := NewServiceGateway(NewClient(srv.URL))
	items, err := gw.List(context.Background(), "tok")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestServiceList_Error_FallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gw := NewServiceGateway(NewClient(srv.URL))
	_, err := gw.List(context.Background(), "tok")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "Failed to fetch services", err.Error())
}

func TestServiceGet_BareImageObjectNormalizedToArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id":"s1","name_uz":"A","name_ru":"B","image":{"url":"http://x/img.png"}}`))
	}))
	defer srv.Close()

	gw := NewServiceGateway(NewClient(srv.URL))
	svc, err := gw.Get(context.Background(), "tok", "s1")
	require.NoError(t, err)
	require.Len(t, svc.Image, 1)
	assert.Equal(t, "http://x/img.png", svc.Image[0].URL)
}

func TestServiceCreate_BackendRejection_SurfacesValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"name_uz already exists"}`))
	}))
	defer srv.Close()

	gw := NewServiceGateway(NewClient(srv.URL))
	_, err := gw.Create(context.Background(), "tok", models.Service{NameUz: "A", NameRu: "B"})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "name_uz already exists", valErr.Message)
}

func TestServiceUpdate_Error_FallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gw := NewServiceGateway(NewClient(srv.URL))
	_, err := gw.Update(context.Background(), "tok", "s1", models.Service{NameUz: "A", NameRu: "B"})
	require.Error(t, err)
	assert.Equal(t, "Failed to update service", err.Error())
}

func TestServiceDelete_RepeatedDeleteSurfacesError(t *testing.T) {
	deleted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if deleted {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		deleted = true
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	gw := NewServiceGateway(NewClient(srv.URL))
	require.NoError(t, gw.Delete(context.Background(), "tok", "s1"))

	err := gw.Delete(context.Background(), "tok", "s1")
	require.Error(t, err)
	assert.Equal(t, "Failed to delete service", err.Error())
}

func TestServiceDelete_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	gw := NewServiceGateway(NewClient(srv.URL))
	err := gw.Delete(context.Background(), "tok", "s1")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "Failed to delete service", err.Error())
}

// TestServiceCreateThenList exercises the full create/list round trip
// against a minimal in-memory backend.
func TestServiceCreateThenList(t *testing.T) {
	var store []models.Service
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPost:
			var svc models.Service
			require.NoError(t, json.NewDecoder(r.Body).Decode(&svc))
			svc.ID = "s1"
			store = append(store, svc)
			json.NewEncoder(w).Encode(svc)
		case http.MethodGet:
			json.NewEncoder(w).Encode(store)
		}
	}))
	defer srv.Close()

	gw := NewServiceGateway(NewClient(srv.URL))

	created, err := gw.Create(context.Background(), "tok", models.Service{
		NameUz:        "A",
		NameRu:        "B",
		DescriptionUz: "c",
		DescriptionRu: "d",
		Image:         models.ImageList{{URL: "http://x/img.png"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", created.ID)

	items, err := gw.List(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].NameUz)
	assert.Equal(t, "B", items[0].NameRu)
}
