package betting

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "betfair/internal/http"
	"betfair/internal/transport"
	"betfair/pkg/core"
)

type recorded struct {
	path    string
	headers http.Header
	body    string
}

func newServer(t *testing.T, status int, response string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.path = r.URL.Path
		rec.headers = r.Header.Clone()
		rec.body = string(body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, rec
}

func newClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	hc, err := httpclient.NewClient(&httpclient.Config{Timeout: 5 * time.Second}, zerolog.Nop())
	require.NoError(t, err)
	tc := transport.NewClient(hc, zerolog.Nop())
	t.Cleanup(func() { _ = tc.Close() })

	config := core.DefaultConfig("app-key").WithBettingURL(serverURL + "/exchange/betting/rest/v1.0/")
	return New(config, tc, zerolog.Nop())
}

// fakeClient records the request body and answers with response.
func fakeClient(response string, body *map[string]any) *Client {
	ex := core.ExecutorFunc(func(_ context.Context, req *core.Request) ([]byte, error) {
		if body != nil {
			if err := sonic.Unmarshal(req.Body, body); err != nil {
				return nil, err
			}
		}
		return []byte(response), nil
	})
	return New(core.DefaultConfig("app-key"), ex, zerolog.Nop())
}

func TestListEventTypes(t *testing.T) {
	server, rec := newServer(t, http.StatusOK, `[{"eventType":{"id":"1","name":"Horse Racing"},"marketCount":20701}]`)
	client := newClient(t, server.URL)

	result, err := client.ListEventTypes(context.Background(), "token", MarketFilter{})
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, "1", result[0].EventType.ID)
	assert.Equal(t, "Horse Racing", result[0].EventType.Name)
	assert.Equal(t, 20701, result[0].MarketCount)

	assert.Equal(t, "/exchange/betting/rest/v1.0/listEventTypes/", rec.path)
	assert.Equal(t, `{"filter":{}}`, rec.body)
	assert.Equal(t, "token", rec.headers.Get("X-Authentication"))
	assert.Equal(t, "app-key", rec.headers.Get("X-Application"))
	assert.Equal(t, "application/json", rec.headers.Get("Content-Type"))
	assert.Equal(t, "application/json", rec.headers.Get("Accept"))
}

func TestListEventTypes_Options(t *testing.T) {
	server, rec := newServer(t, http.StatusOK, `[]`)
	client := newClient(t, server.URL)

	filter := MarketFilter{EventTypeIDs: []string{"7"}, InPlayOnly: Bool(false)}
	result, err := client.ListEventTypes(context.Background(), "token", filter, WithMaxResults(10), WithLocale("en"))
	require.NoError(t, err)
	assert.Empty(t, result)

	assert.Equal(t, `{"filter":{"eventTypeIds":["7"],"inPlayOnly":false},"maxResults":10,"locale":"en"}`, rec.body)
}

func TestSimpleListOperations(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		response string
		call     func(c *Client) (int, error)
	}{
		{
			name:     "listCompetitions",
			response: `[{"competition":{"id":"12","name":"Premier League"},"marketCount":3,"competitionRegion":"GBR"}]`,
			call: func(c *Client) (int, error) {
				r, err := c.ListCompetitions(ctx, "token", MarketFilter{})
				return len(r), err
			},
		},
		{
			name:     "listEvents",
			response: `[{"event":{"id":"29","name":"Ascot","countryCode":"GB","openDate":"2026-10-18T12:00:00.000Z"},"marketCount":7}]`,
			call: func(c *Client) (int, error) {
				r, err := c.ListEvents(ctx, "token", MarketFilter{})
				return len(r), err
			},
		},
		{
			name:     "listMarketTypes",
			response: `[{"marketType":"WIN","marketCount":4},{"marketType":"PLACE","marketCount":2}]`,
			call: func(c *Client) (int, error) {
				r, err := c.ListMarketTypes(ctx, "token", MarketFilter{})
				return len(r), err
			},
		},
		{
			name:     "listCountries",
			response: `[{"countryCode":"GB","marketCount":40}]`,
			call: func(c *Client) (int, error) {
				r, err := c.ListCountries(ctx, "token", MarketFilter{})
				return len(r), err
			},
		},
		{
			name:     "listVenues",
			response: `[{"venue":"Ascot","marketCount":12}]`,
			call: func(c *Client) (int, error) {
				r, err := c.ListVenues(ctx, "token", MarketFilter{})
				return len(r), err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, rec := newServer(t, http.StatusOK, tt.response)
			n, err := tt.call(newClient(t, server.URL))
			require.NoError(t, err)
			assert.Positive(t, n)
			assert.Equal(t, "/exchange/betting/rest/v1.0/"+tt.name+"/", rec.path)
		})
	}
}

func TestListEventTypes_MissingID(t *testing.T) {
	client := fakeClient(`[{"eventType":{"name":"Horse Racing"},"marketCount":1}]`, nil)

	result, err := client.ListEventTypes(context.Background(), "token", MarketFilter{})
	assert.Nil(t, result)
	assert.True(t, core.IsDecodeError(err))
}

func TestListEventTypes_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
		is      func(error) bool
	}{
		{
			name:    "server error with body",
			status:  http.StatusBadRequest,
			body:    `{"faultcode":"Client","faultstring":"ANGX-0006","detail":{"APINGException":{"errorCode":"INVALID_SESSION_INFORMATION"}}}`,
			wantMsg: `Response code: 400, reason: {"faultcode":"Client","faultstring":"ANGX-0006","detail":{"APINGException":{"errorCode":"INVALID_SESSION_INFORMATION"}}}`,
			is:      core.IsServerError,
		},
		{
			name:    "server error without body",
			status:  http.StatusServiceUnavailable,
			wantMsg: "Response code: 503, reason: Service Unavailable",
			is:      core.IsServerError,
		},
		{
			name:    "empty body",
			status:  http.StatusOK,
			wantMsg: "Response body is null",
			is:      core.IsEmptyResponse,
		},
		{
			name:   "wrong shape",
			status: http.StatusOK,
			body:   `{"eventType":"1"}`,
			is:     core.IsDecodeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newServer(t, tt.status, tt.body)
			client := newClient(t, server.URL)

			result, err := client.ListEventTypes(context.Background(), "token", MarketFilter{})
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, tt.is(err))

			if tt.wantMsg != "" {
				var apiErr *core.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.wantMsg, apiErr.Message)
			}
		})
	}
}

func TestListEventTypes_FaultCode(t *testing.T) {
	server, _ := newServer(t, http.StatusBadRequest,
		`{"detail":{"APINGException":{"errorCode":"INVALID_SESSION_INFORMATION"}}}`)
	client := newClient(t, server.URL)

	_, err := client.ListEventTypes(context.Background(), "expired", MarketFilter{})
	assert.True(t, core.IsErrorCode(err, core.ErrCodeInvalidSessionInformation))
	assert.True(t, core.IsSessionError(err))
}

func TestListEventTypes_MissingToken(t *testing.T) {
	client := fakeClient(`[]`, nil)

	_, err := client.ListEventTypes(context.Background(), "", MarketFilter{})
	assert.ErrorIs(t, err, core.ErrMissingSessionToken)
}

func TestListTimeRanges(t *testing.T) {
	var body map[string]any
	client := fakeClient(`[{"timeRange":{"from":"2026-10-18T00:00:00Z","to":"2026-10-19T00:00:00Z"},"marketCount":5}]`, &body)

	result, err := client.ListTimeRanges(context.Background(), "token", MarketFilter{}, GranularityDays)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.NotNil(t, result[0].TimeRange.From)
	assert.Equal(t, 18, result[0].TimeRange.From.Day())
	assert.Equal(t, 5, result[0].MarketCount)
	assert.Equal(t, "DAYS", body["granularity"])

	_, err = client.ListTimeRanges(context.Background(), "token", MarketFilter{}, "WEEKS")
	assert.Error(t, err)
}

func TestListMarketCatalogue(t *testing.T) {
	var body map[string]any
	client := fakeClient(`[{
		"marketId":"1.23","marketName":"Win","totalMatched":1500.5,
		"runners":[{"selectionId":47972,"runnerName":"Frankel","handicap":0,"sortPriority":1}],
		"event":{"id":"29","name":"Ascot"}
	}]`, &body)

	result, err := client.ListMarketCatalogue(context.Background(), "token", &ListMarketCatalogueRequest{
		Filter:           MarketFilter{EventIDs: []string{"29"}},
		MarketProjection: []MarketProjection{ProjectionRunnerDescription, ProjectionEvent},
		Sort:             SortFirstToStart,
		MaxResults:       10,
	})
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, "1.23", result[0].MarketID)
	assert.Equal(t, 1500.5, result[0].TotalMatched)
	require.Len(t, result[0].Runners, 1)
	assert.Equal(t, int64(47972), result[0].Runners[0].SelectionID)
	assert.Equal(t, "Ascot", result[0].Event.Name)

	assert.Equal(t, float64(10), body["maxResults"])
	assert.Equal(t, "FIRST_TO_START", body["sort"])
	assert.Equal(t, []any{"RUNNER_DESCRIPTION", "EVENT"}, body["marketProjection"])
	assert.NotContains(t, body, "locale")
}

func TestListMarketCatalogue_Invalid(t *testing.T) {
	client := fakeClient(`[]`, nil)

	_, err := client.ListMarketCatalogue(context.Background(), "token", &ListMarketCatalogueRequest{})
	assert.ErrorContains(t, err, "invalid request")

	_, err = client.ListMarketCatalogue(context.Background(), "token", &ListMarketCatalogueRequest{MaxResults: 1001})
	assert.ErrorContains(t, err, "invalid request")

	_, err = client.ListMarketCatalogue(context.Background(), "token", nil)
	assert.ErrorIs(t, err, ErrNilRequest)
}

func TestListMarketBook(t *testing.T) {
	var body map[string]any
	client := fakeClient(`[{
		"marketId":"1.23","status":"OPEN","inplay":false,"numberOfRunners":2,"version":42,
		"runners":[{
			"selectionId":47972,"status":"ACTIVE","lastPriceTraded":2.5,
			"ex":{"availableToBack":[{"price":2.48,"size":120.5}],"availableToLay":[{"price":2.52,"size":80}],"tradedVolume":[]}
		}]
	}]`, &body)

	result, err := client.ListMarketBook(context.Background(), "token", &ListMarketBookRequest{
		MarketIDs:              []string{"1.23"},
		PriceProjection:        &PriceProjection{PriceData: []PriceData{PriceDataExBestOffers}},
		IncludeOverallPosition: Bool(false),
	})
	require.NoError(t, err)
	require.Len(t, result, 1)

	book := result[0]
	assert.Equal(t, MarketOpen, book.Status)
	assert.Equal(t, int64(42), book.Version)
	require.Len(t, book.Runners, 1)

	back, ok := book.Runners[0].EX.BestBack()
	require.True(t, ok)
	assert.Equal(t, PriceSize{Price: 2.48, Size: 120.5}, back)
	lay, ok := book.Runners[0].EX.BestLay()
	require.True(t, ok)
	assert.Equal(t, 2.52, lay.Price)

	assert.Equal(t, []any{"1.23"}, body["marketIds"])
	assert.Equal(t, false, body["includeOverallPosition"])
	assert.Equal(t, map[string]any{"priceData": []any{"EX_BEST_OFFERS"}}, body["priceProjection"])
	assert.NotContains(t, body, "orderProjection")
}

func TestListMarketBook_NoMarkets(t *testing.T) {
	client := fakeClient(`[]`, nil)

	_, err := client.ListMarketBook(context.Background(), "token", &ListMarketBookRequest{})
	assert.ErrorContains(t, err, "invalid request")
}

func TestListRunnerBook(t *testing.T) {
	var body map[string]any
	client := fakeClient(`[{"marketId":"1.23","runners":[{"selectionId":47972,"handicap":0}]}]`, &body)

	result, err := client.ListRunnerBook(context.Background(), "token", &ListRunnerBookRequest{
		MarketID:    "1.23",
		SelectionID: 47972,
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "1.23", body["marketId"])
	assert.Equal(t, float64(47972), body["selectionId"])
	assert.NotContains(t, body, "handicap")
}

func TestListMarketProfitAndLoss(t *testing.T) {
	var body map[string]any
	client := fakeClient(`[{"marketId":"1.23","commissionApplied":5,"profitAndLosses":[{"selectionId":47972,"ifWin":12.5,"ifLose":-5}]}]`, &body)

	result, err := client.ListMarketProfitAndLoss(context.Background(), "token", &ListMarketProfitAndLossRequest{
		MarketIDs:       []string{"1.23"},
		NetOfCommission: true,
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Len(t, result[0].ProfitAndLosses, 1)
	assert.Equal(t, 12.5, result[0].ProfitAndLosses[0].IfWin)
	assert.Equal(t, true, body["netOfCommission"])
	assert.NotContains(t, body, "includeSettledBets")
}

func TestListCurrentOrders(t *testing.T) {
	var body map[string]any
	client := fakeClient(`{
		"currentOrders":[{
			"betId":"31242604945","marketId":"1.23","selectionId":47972,
			"priceSize":{"price":2.5,"size":10},"side":"BACK","status":"EXECUTABLE",
			"persistenceType":"LAPSE","orderType":"LIMIT","placedDate":"2026-10-18T10:00:00.000Z",
			"sizeMatched":0,"sizeRemaining":10
		}],
		"moreAvailable":true
	}`, &body)

	report, err := client.ListCurrentOrders(context.Background(), "token", nil)
	require.NoError(t, err)
	require.Len(t, report.CurrentOrders, 1)
	assert.True(t, report.MoreAvailable)

	order := report.CurrentOrders[0]
	assert.Equal(t, "31242604945", order.BetID)
	assert.Equal(t, core.SideBack, order.Side)
	assert.Equal(t, core.OrderStatusExecutable, order.Status)
	assert.Equal(t, 2.5, order.PriceSize.Price)
	assert.Empty(t, body)
}

func TestListCurrentOrders_Paging(t *testing.T) {
	var body map[string]any
	client := fakeClient(`{"currentOrders":[],"moreAvailable":false}`, &body)

	report, err := client.ListCurrentOrders(context.Background(), "token", &ListCurrentOrdersRequest{
		MarketIDs:   []string{"1.23"},
		OrderBy:     OrderByPlaceTime,
		FromRecord:  100,
		RecordCount: 50,
	})
	require.NoError(t, err)
	assert.False(t, report.MoreAvailable)
	assert.Equal(t, float64(100), body["fromRecord"])
	assert.Equal(t, float64(50), body["recordCount"])
	assert.Equal(t, "BY_PLACE_TIME", body["orderBy"])
}

func TestListCurrentOrders_MissingBetID(t *testing.T) {
	client := fakeClient(`{"currentOrders":[{"marketId":"1.23"}],"moreAvailable":false}`, nil)

	report, err := client.ListCurrentOrders(context.Background(), "token", nil)
	assert.Nil(t, report)
	assert.True(t, core.IsDecodeError(err))
}

func TestListClearedOrders(t *testing.T) {
	var body map[string]any
	client := fakeClient(`{
		"clearedOrders":[{"eventTypeId":"7","marketId":"1.23","betId":"1","profit":15.2,"betOutcome":"WON","betCount":1}],
		"moreAvailable":false
	}`, &body)

	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	report, err := client.ListClearedOrders(context.Background(), "token", &ListClearedOrdersRequest{
		BetStatus:        BetStatusSettled,
		SettledDateRange: Between(from, to),
	})
	require.NoError(t, err)
	require.Len(t, report.ClearedOrders, 1)
	assert.Equal(t, 15.2, report.ClearedOrders[0].Profit)

	assert.Equal(t, "SETTLED", body["betStatus"])
	assert.Contains(t, body, "settledDateRange")

	_, err = client.ListClearedOrders(context.Background(), "token", &ListClearedOrdersRequest{})
	assert.ErrorContains(t, err, "invalid request")
}

func TestPlaceOrders(t *testing.T) {
	var body map[string]any
	client := fakeClient(`{
		"status":"SUCCESS","marketId":"1.23","customerRef":"ref",
		"instructionReports":[{
			"status":"SUCCESS","orderStatus":"EXECUTION_COMPLETE","betId":"31242604945",
			"instruction":{"selectionId":47972,"side":"BACK","orderType":"LIMIT","limitOrder":{"size":10,"price":2.5,"persistenceType":"LAPSE"}},
			"averagePriceMatched":2.5,"sizeMatched":10
		}]
	}`, &body)

	inst, err := NewPlaceInstructionBuilder(47972).Back().Limit(2.5, 10, core.PersistenceLapse).Build()
	require.NoError(t, err)

	req := &PlaceOrdersRequest{MarketID: "1.23", Instructions: []PlaceInstruction{inst}}
	report, err := client.PlaceOrders(context.Background(), "token", req)
	require.NoError(t, err)

	assert.True(t, report.IsSuccess())
	assert.Equal(t, []string{"31242604945"}, report.BetIDs())
	assert.Equal(t, core.OrderStatusExecutionComplete, report.InstructionReports[0].OrderStatus)

	assert.Equal(t, "1.23", body["marketId"])
	assert.Len(t, body["customerRef"], 32)
	assert.Empty(t, req.CustomerRef)
	instructions := body["instructions"].([]any)
	require.Len(t, instructions, 1)
	first := instructions[0].(map[string]any)
	assert.Equal(t, "BACK", first["side"])
	assert.Equal(t, "LIMIT", first["orderType"])
	assert.Equal(t, map[string]any{"size": 10.0, "price": 2.5, "persistenceType": "LAPSE"}, first["limitOrder"])
}

func TestPlaceOrders_KeepsCustomerRef(t *testing.T) {
	var body map[string]any
	client := fakeClient(`{"status":"FAILURE","errorCode":"MARKET_NOT_OPEN_FOR_BETTING","marketId":"1.23"}`, &body)

	inst, err := NewPlaceInstructionBuilder(47972).Lay().MarketOnClose(20).Build()
	require.NoError(t, err)

	report, err := client.PlaceOrders(context.Background(), "token", &PlaceOrdersRequest{
		MarketID:     "1.23",
		Instructions: []PlaceInstruction{inst},
		CustomerRef:  "my-ref",
	})
	require.NoError(t, err)
	assert.False(t, report.IsSuccess())
	assert.Equal(t, "MARKET_NOT_OPEN_FOR_BETTING", report.ErrorCode)
	assert.Equal(t, "my-ref", body["customerRef"])
}

func TestPlaceOrders_Invalid(t *testing.T) {
	client := fakeClient(`{"status":"SUCCESS"}`, nil)

	tests := []struct {
		name string
		req  *PlaceOrdersRequest
	}{
		{"no market", &PlaceOrdersRequest{Instructions: []PlaceInstruction{{OrderType: core.OrderTypeLimit, SelectionID: 1, Side: core.SideBack}}}},
		{"no instructions", &PlaceOrdersRequest{MarketID: "1.23"}},
		{"bad side", &PlaceOrdersRequest{MarketID: "1.23", Instructions: []PlaceInstruction{{OrderType: core.OrderTypeLimit, SelectionID: 1, Side: "UP"}}}},
		{"limit without price", &PlaceOrdersRequest{MarketID: "1.23", Instructions: []PlaceInstruction{{
			OrderType: core.OrderTypeLimit, SelectionID: 1, Side: core.SideBack,
			LimitOrder: &LimitOrder{Size: 2, PersistenceType: core.PersistenceLapse},
		}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.PlaceOrders(context.Background(), "token", tt.req)
			assert.ErrorContains(t, err, "invalid request")
		})
	}
}

func TestCancelOrders(t *testing.T) {
	var body map[string]any
	client := fakeClient(`{
		"status":"SUCCESS","marketId":"1.23",
		"instructionReports":[{"status":"SUCCESS","instruction":{"betId":"1","sizeReduction":2},"sizeCancelled":2}]
	}`, &body)

	report, err := client.CancelOrders(context.Background(), "token", &CancelOrdersRequest{
		MarketID:     "1.23",
		Instructions: []CancelInstruction{{BetID: "1", SizeReduction: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, ExecutionSuccess, report.Status)
	require.Len(t, report.InstructionReports, 1)
	assert.Equal(t, 2.0, report.InstructionReports[0].SizeCancelled)
	assert.Equal(t, "1.23", body["marketId"])
}

func TestCancelOrders_All(t *testing.T) {
	var body map[string]any
	client := fakeClient(`{"status":"SUCCESS"}`, &body)

	_, err := client.CancelOrders(context.Background(), "token", nil)
	require.NoError(t, err)
	assert.Empty(t, body)

	_, err = client.CancelOrders(context.Background(), "token", &CancelOrdersRequest{
		Instructions: []CancelInstruction{{BetID: "1"}},
	})
	assert.ErrorContains(t, err, "invalid request")
}

func TestReplaceOrders(t *testing.T) {
	var body map[string]any
	client := fakeClient(`{
		"status":"SUCCESS","marketId":"1.23",
		"instructionReports":[{
			"status":"SUCCESS",
			"cancelInstructionReport":{"status":"SUCCESS","sizeCancelled":10},
			"placeInstructionReport":{"status":"SUCCESS","betId":"2","orderStatus":"EXECUTABLE"}
		}]
	}`, &body)

	report, err := client.ReplaceOrders(context.Background(), "token", &ReplaceOrdersRequest{
		MarketID:     "1.23",
		Instructions: []ReplaceInstruction{{BetID: "1", NewPrice: 3.0}},
	})
	require.NoError(t, err)
	require.Len(t, report.InstructionReports, 1)
	require.NotNil(t, report.InstructionReports[0].PlaceInstructionReport)
	assert.Equal(t, "2", report.InstructionReports[0].PlaceInstructionReport.BetID)
	assert.Equal(t, []any{map[string]any{"betId": "1", "newPrice": 3.0}}, body["instructions"])
}

func TestUpdateOrders(t *testing.T) {
	var body map[string]any
	client := fakeClient(`{"status":"SUCCESS","marketId":"1.23","instructionReports":[{"status":"SUCCESS"}]}`, &body)

	report, err := client.UpdateOrders(context.Background(), "token", &UpdateOrdersRequest{
		MarketID:     "1.23",
		Instructions: []UpdateInstruction{{BetID: "1", NewPersistenceType: core.PersistencePersist}},
	})
	require.NoError(t, err)
	assert.Equal(t, ExecutionSuccess, report.Status)
	assert.Equal(t, []any{map[string]any{"betId": "1", "newPersistenceType": "PERSIST"}}, body["instructions"])
}

func TestOrderOperations_AreTransactional(t *testing.T) {
	var seen []core.Operation
	ex := core.ExecutorFunc(func(_ context.Context, req *core.Request) ([]byte, error) {
		seen = append(seen, req.Operation)
		return []byte(`{"status":"SUCCESS"}`), nil
	})
	client := New(core.DefaultConfig("app-key"), ex, zerolog.Nop())
	ctx := context.Background()

	_, err := client.CancelOrders(ctx, "token", nil)
	require.NoError(t, err)
	_, err = client.UpdateOrders(ctx, "token", &UpdateOrdersRequest{
		MarketID:     "1.23",
		Instructions: []UpdateInstruction{{BetID: "1", NewPersistenceType: core.PersistenceLapse}},
	})
	require.NoError(t, err)

	require.Len(t, seen, 2)
	for _, op := range seen {
		assert.True(t, op.IsTransactional(), op.String())
	}
}

func TestAllOperations_ErrorsAndHeaders(t *testing.T) {
	ctx := context.Background()
	inst, err := NewPlaceInstructionBuilder(47972).Back().Limit(2.5, 10, core.PersistenceLapse).Build()
	require.NoError(t, err)

	operations := []struct {
		name string
		call func(c *Client) error
	}{
		{"listEventTypes", func(c *Client) error { _, err := c.ListEventTypes(ctx, "token", MarketFilter{}); return err }},
		{"listCompetitions", func(c *Client) error { _, err := c.ListCompetitions(ctx, "token", MarketFilter{}); return err }},
		{"listEvents", func(c *Client) error { _, err := c.ListEvents(ctx, "token", MarketFilter{}); return err }},
		{"listMarketTypes", func(c *Client) error { _, err := c.ListMarketTypes(ctx, "token", MarketFilter{}); return err }},
		{"listCountries", func(c *Client) error { _, err := c.ListCountries(ctx, "token", MarketFilter{}); return err }},
		{"listVenues", func(c *Client) error { _, err := c.ListVenues(ctx, "token", MarketFilter{}); return err }},
		{"listTimeRanges", func(c *Client) error {
			_, err := c.ListTimeRanges(ctx, "token", MarketFilter{}, GranularityDays)
			return err
		}},
		{"listMarketCatalogue", func(c *Client) error {
			_, err := c.ListMarketCatalogue(ctx, "token", &ListMarketCatalogueRequest{MaxResults: 10})
			return err
		}},
		{"listMarketBook", func(c *Client) error {
			_, err := c.ListMarketBook(ctx, "token", &ListMarketBookRequest{MarketIDs: []string{"1.23"}})
			return err
		}},
		{"listRunnerBook", func(c *Client) error {
			_, err := c.ListRunnerBook(ctx, "token", &ListRunnerBookRequest{MarketID: "1.23", SelectionID: 47972})
			return err
		}},
		{"listMarketProfitAndLoss", func(c *Client) error {
			_, err := c.ListMarketProfitAndLoss(ctx, "token", &ListMarketProfitAndLossRequest{MarketIDs: []string{"1.23"}})
			return err
		}},
		{"listCurrentOrders", func(c *Client) error { _, err := c.ListCurrentOrders(ctx, "token", nil); return err }},
		{"listClearedOrders", func(c *Client) error {
			_, err := c.ListClearedOrders(ctx, "token", &ListClearedOrdersRequest{BetStatus: BetStatusSettled})
			return err
		}},
		{"placeOrders", func(c *Client) error {
			_, err := c.PlaceOrders(ctx, "token", &PlaceOrdersRequest{MarketID: "1.23", Instructions: []PlaceInstruction{inst}})
			return err
		}},
		{"cancelOrders", func(c *Client) error { _, err := c.CancelOrders(ctx, "token", nil); return err }},
		{"replaceOrders", func(c *Client) error {
			_, err := c.ReplaceOrders(ctx, "token", &ReplaceOrdersRequest{
				MarketID:     "1.23",
				Instructions: []ReplaceInstruction{{BetID: "1", NewPrice: 3.0}},
			})
			return err
		}},
		{"updateOrders", func(c *Client) error {
			_, err := c.UpdateOrders(ctx, "token", &UpdateOrdersRequest{
				MarketID:     "1.23",
				Instructions: []UpdateInstruction{{BetID: "1", NewPersistenceType: core.PersistencePersist}},
			})
			return err
		}},
	}

	responses := []struct {
		name    string
		status  int
		body    string
		is      func(error) bool
		message string
	}{
		{"server_error", http.StatusInternalServerError, "boom", core.IsServerError, "Response code: 500, reason: boom"},
		{"empty_body", http.StatusOK, "", core.IsEmptyResponse, "Response body is null"},
	}

	for _, op := range operations {
		for _, resp := range responses {
			t.Run(op.name+"/"+resp.name, func(t *testing.T) {
				server, rec := newServer(t, resp.status, resp.body)

				err := op.call(newClient(t, server.URL))
				require.Error(t, err)
				assert.True(t, resp.is(err), "unexpected error: %v", err)

				var apiErr *core.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, resp.message, apiErr.Message)
				assert.Equal(t, op.name, apiErr.Operation)

				assert.Equal(t, "/exchange/betting/rest/v1.0/"+op.name+"/", rec.path)
				assert.Equal(t, "token", rec.headers.Get("X-Authentication"))
				assert.Equal(t, "app-key", rec.headers.Get("X-Application"))
				assert.Equal(t, "application/json", rec.headers.Get("Content-Type"))
				assert.Equal(t, "application/json", rec.headers.Get("Accept"))
			})
		}
	}
}
