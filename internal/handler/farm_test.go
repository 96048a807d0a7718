package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/farming"
	"github.com/osse101/HerbRun_Go/mocks"
)

func sampleRows() []domain.HerbStats {
	return []domain.HerbStats{
		{
			Herb:       domain.HerbRanarr,
			Name:       "Ranarr weed",
			MeetsLevel: true,
			Stats: domain.PatchStats{
				SurvivalChance: 0.9,
				ExpectedYield:  8.5,
				ExpectedXP:     300,
				SeedPrice:      domain.SomePrice(45000),
				HerbPrice:      domain.SomePrice(7000),
				Profit:         14500,
			},
		},
	}
}

func samplePatches() []farming.PatchInfo {
	return []farming.PatchInfo{{Patch: domain.PatchCatherby, Description: "Catherby"}}
}

func TestFarmHandlers_HandleHerbTable(t *testing.T) {
	mainProfile := &domain.HerbProfile{
		Name:          "main",
		DefaultPlayer: "Zezima",
		Config:        domain.HerbConfig{Patches: []domain.HerbPatch{domain.PatchCatherby}},
	}

	tests := []struct {
		name       string
		body       string
		setup      func(f *mocks.MockFarmingService, p *mocks.MockProfileService)
		wantStatus int
		verify     func(t *testing.T, body string)
	}{
		{
			name: "Config With Levels",
			body: `{"config": {"patches": ["catherby"], "compost": "ultra"}, "farming_level": 85}`,
			setup: func(f *mocks.MockFarmingService, _ *mocks.MockProfileService) {
				f.On("ResolveLevels", mock.Anything, mock.MatchedBy(func(r farming.HerbRequest) bool {
					return r.FarmingLevel == 85 && r.Config.Compost == domain.CompostUltra
				})).Return(domain.Levels{Farming: 85}, nil).Once()
				f.On("HerbTable", mock.Anything, mock.MatchedBy(func(r farming.HerbRequest) bool {
					return r.FarmingLevel == 85
				})).Return(sampleRows(), nil).Once()
				f.On("DescribePatches", mock.Anything).Return(samplePatches()).Once()
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, body string) {
				var resp HerbTableResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, 85, resp.Levels.Farming)
				require.Len(t, resp.Rows, 1)
				assert.Equal(t, domain.HerbRanarr, resp.Rows[0].Herb)
				assert.Equal(t, 14500, resp.Rows[0].Stats.Profit)
				assert.Len(t, resp.Patches, 1)
			},
		},
		{
			name: "Profile Supplies Player",
			body: `{"profile": "main", "herbs": ["ranarr"]}`,
			setup: func(f *mocks.MockFarmingService, p *mocks.MockProfileService) {
				p.On("Get", mock.Anything, "main").Return(mainProfile, nil).Once()
				f.On("ResolveLevels", mock.Anything, mock.MatchedBy(func(r farming.HerbRequest) bool {
					return r.Player == "Zezima" && len(r.Herbs) == 1 && r.Herbs[0] == domain.HerbRanarr
				})).Return(domain.Levels{Farming: 99}, nil).Once()
				f.On("HerbTable", mock.Anything, mock.MatchedBy(func(r farming.HerbRequest) bool {
					return r.FarmingLevel == 99 && r.Player == "Zezima"
				})).Return(sampleRows(), nil).Once()
				f.On("DescribePatches", mock.Anything).Return(samplePatches()).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Neither Config Nor Profile",
			body:       `{"farming_level": 50}`,
			wantStatus: http.StatusBadRequest,
			verify: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgConfigOrProfile)
			},
		},
		{
			name:       "Both Config And Profile",
			body:       `{"profile": "main", "config": {"patches": ["weiss"]}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Malformed JSON",
			body:       `{"config": `,
			wantStatus: http.StatusBadRequest,
			verify: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgInvalidRequest)
			},
		},
		{
			name:       "Unknown Field",
			body:       `{"config": {"patches": ["weiss"]}, "farmingLevel": 50}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Unknown Compost",
			body:       `{"config": {"patches": ["weiss"], "compost": "bottomless"}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Level Out Of Range",
			body:       `{"config": {"patches": ["weiss"]}, "farming_level": 120}`,
			wantStatus: http.StatusBadRequest,
			verify: func(t *testing.T, body string) {
				var resp ValidationErrorResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "Must be at most 99", resp.Fields["farming_level"])
			},
		},
		{
			name:       "No Patches",
			body:       `{"config": {"patches": []}, "farming_level": 50}`,
			wantStatus: http.StatusBadRequest,
			verify: func(t *testing.T, body string) {
				assert.Contains(t, body, domain.ErrMsgNoPatches)
			},
		},
		{
			name: "Player Not Found",
			body: `{"config": {"patches": ["weiss"]}, "player": "nobody"}`,
			setup: func(f *mocks.MockFarmingService, _ *mocks.MockProfileService) {
				f.On("ResolveLevels", mock.Anything, mock.Anything).Return(domain.Levels{}, domain.ErrPlayerNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "Price Lookup Failed",
			body: `{"config": {"patches": ["weiss"]}, "farming_level": 50}`,
			setup: func(f *mocks.MockFarmingService, _ *mocks.MockProfileService) {
				f.On("ResolveLevels", mock.Anything, mock.Anything).Return(domain.Levels{Farming: 50}, nil).Once()
				f.On("HerbTable", mock.Anything, mock.Anything).Return(nil, domain.ErrPriceLookup).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "Profile Not Found",
			body: `{"profile": "gone"}`,
			setup: func(_ *mocks.MockFarmingService, p *mocks.MockProfileService) {
				p.On("Get", mock.Anything, "gone").Return(nil, domain.ErrProfileNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			farmSvc := mocks.NewMockFarmingService(t)
			profileSvc := mocks.NewMockProfileService(t)
			if tt.setup != nil {
				tt.setup(farmSvc, profileSvc)
			}

			h := NewFarmHandlers(farmSvc, profileSvc)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/farm/herbs", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleHerbTable().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.verify != nil {
				tt.verify(t, rec.Body.String())
			}
		})
	}
}

func TestFarmHandlers_ProfilesDisabled(t *testing.T) {
	h := NewFarmHandlers(mocks.NewMockFarmingService(t), nil)

	rec := httptest.NewRecorder()
	h.HandleHerbTable().ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/api/v1/farm/herbs", strings.NewReader(`{"profile": "main"}`)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgProfilesDisabled)
}

func TestFarmHandlers_HandleDescribePatches(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		farmSvc := mocks.NewMockFarmingService(t)
		profileSvc := mocks.NewMockProfileService(t)
		profileSvc.On("Get", mock.Anything, "main").Return(&domain.HerbProfile{
			Name:   "main",
			Config: domain.HerbConfig{Patches: []domain.HerbPatch{domain.PatchCatherby}},
		}, nil).Once()
		farmSvc.On("DescribePatches", mock.MatchedBy(func(c *domain.HerbConfig) bool {
			return c.HasPatch(domain.PatchCatherby)
		})).Return(samplePatches()).Once()

		rec := httptest.NewRecorder()
		NewFarmHandlers(farmSvc, profileSvc).HandleDescribePatches().ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/api/v1/farm/patches?profile=main", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp PatchesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "main", resp.Profile)
		assert.Equal(t, samplePatches(), resp.Patches)
	})

	t.Run("Missing Profile", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewFarmHandlers(mocks.NewMockFarmingService(t), mocks.NewMockProfileService(t)).
			HandleDescribePatches().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/farm/patches", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing profile query parameter")
	})
}
