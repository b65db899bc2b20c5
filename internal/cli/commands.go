package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"betfair/pkg/accounts"
	"betfair/pkg/betting"
	"betfair/pkg/core"
)

func (a *app) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in with the configured certificate and print the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.ex.Login(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, s)
		},
	}
}

func (a *app) keepAliveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keep-alive",
		Short: "Extend the session given by --token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			s, err := a.ex.Session.KeepAlive(cmd.Context(), token)
			if err != nil {
				return err
			}
			return printJSON(cmd, s)
		},
	}
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session given by --token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.token == "" {
				return core.ErrMissingSessionToken
			}
			if err := a.ex.Session.Logout(cmd.Context(), a.token); err != nil {
				return err
			}
			a.logger.Info().Msg("logged out")
			return nil
		},
	}
}

func (a *app) fundsCmd() *cobra.Command {
	var wallet string
	cmd := &cobra.Command{
		Use:   "funds",
		Short: "Show the available balance and exposure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			funds, err := a.ex.Accounts.GetAccountFunds(cmd.Context(), token, accounts.Wallet(wallet))
			if err != nil {
				return err
			}
			return printJSON(cmd, funds)
		},
	}
	cmd.Flags().StringVar(&wallet, "wallet", "", "wallet to query (UK or AUSTRALIAN)")
	return cmd
}

func (a *app) appsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apps",
		Short: "List the application keys registered to the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			apps, err := a.ex.Accounts.GetDeveloperAppKeys(cmd.Context(), token)
			if err != nil {
				return err
			}
			return printJSON(cmd, apps)
		},
	}
}

func (a *app) accountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the account details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			details, err := a.ex.Accounts.GetAccountDetails(cmd.Context(), token)
			if err != nil {
				return err
			}
			return printJSON(cmd, details)
		},
	}
}

func (a *app) eventTypesCmd() *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:   "event-types",
		Short: "List the sports with open markets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			result, err := a.ex.Betting.ListEventTypes(cmd.Context(), token, betting.MarketFilter{}, betting.WithLocale(locale))
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "language of the returned names")
	return cmd
}

func (a *app) marketsCmd() *cobra.Command {
	var (
		eventTypes []string
		countries  []string
		text       string
		inPlay     bool
		maxResults int
	)
	cmd := &cobra.Command{
		Use:   "markets",
		Short: "List markets in start time order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			filter := betting.MarketFilter{
				TextQuery:       text,
				EventTypeIDs:    eventTypes,
				MarketCountries: countries,
			}
			if cmd.Flags().Changed("in-play") {
				filter.InPlayOnly = betting.Bool(inPlay)
			}
			result, err := a.ex.Betting.ListMarketCatalogue(cmd.Context(), token, &betting.ListMarketCatalogueRequest{
				Filter: filter,
				MarketProjection: []betting.MarketProjection{
					betting.ProjectionEvent,
					betting.ProjectionMarketStartTime,
					betting.ProjectionRunnerDescription,
				},
				Sort:       betting.SortFirstToStart,
				MaxResults: maxResults,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().StringSliceVar(&eventTypes, "event-type", nil, "event type ids, e.g. 7 for horse racing")
	cmd.Flags().StringSliceVar(&countries, "country", nil, "ISO country codes")
	cmd.Flags().StringVar(&text, "text", "", "free text query")
	cmd.Flags().BoolVar(&inPlay, "in-play", false, "only in-play markets (false for only pre-play)")
	cmd.Flags().IntVar(&maxResults, "max", 10, "maximum number of markets (1-1000)")
	return cmd
}

func (a *app) bookCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "book MARKET_ID...",
		Short: "Show the best prices of markets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			projection := &betting.PriceProjection{PriceData: []betting.PriceData{betting.PriceDataExBestOffers}}
			if depth > 0 {
				projection.ExBestOffersOverrides = &betting.ExBestOffersOverrides{BestPricesDepth: depth}
			}
			result, err := a.ex.Betting.ListMarketBook(cmd.Context(), token, &betting.ListMarketBookRequest{
				MarketIDs:       args,
				PriceProjection: projection,
				OrderProjection: betting.OrderProjectionExecutable,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "price levels per side (Betfair default is 3)")
	return cmd
}

func (a *app) ordersCmd() *cobra.Command {
	var (
		markets []string
		from    int
	)
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List current (unsettled) orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			report, err := a.ex.Betting.ListCurrentOrders(cmd.Context(), token, &betting.ListCurrentOrdersRequest{
				MarketIDs:  markets,
				OrderBy:    betting.OrderByPlaceTime,
				SortDir:    betting.SortLatestToEarliest,
				FromRecord: from,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, report)
		},
	}
	cmd.Flags().StringSliceVar(&markets, "market", nil, "restrict to these market ids")
	cmd.Flags().IntVar(&from, "from", 0, "first record of the page")
	return cmd
}

func (a *app) clearedCmd() *cobra.Command {
	var (
		status  string
		markets []string
		groupBy string
	)
	cmd := &cobra.Command{
		Use:   "cleared",
		Short: "List settled, voided, lapsed or cancelled orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			betStatus := betting.BetStatus(status)
			if !betStatus.Valid() {
				return fmt.Errorf("invalid bet status %q", status)
			}
			token, err := a.sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			report, err := a.ex.Betting.ListClearedOrders(cmd.Context(), token, &betting.ListClearedOrdersRequest{
				BetStatus: betStatus,
				MarketIDs: markets,
				GroupBy:   betting.GroupBy(groupBy),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, report)
		},
	}
	cmd.Flags().StringVar(&status, "status", string(betting.BetStatusSettled), "SETTLED, VOIDED, LAPSED or CANCELLED")
	cmd.Flags().StringSliceVar(&markets, "market", nil, "restrict to these market ids")
	cmd.Flags().StringVar(&groupBy, "group-by", "", "EVENT_TYPE, EVENT, MARKET, SIDE or BET")
	return cmd
}

func (a *app) placeCmd() *cobra.Command {
	var (
		side        string
		price       float64
		size        float64
		persistence string
		ref         string
	)
	cmd := &cobra.Command{
		Use:   "place MARKET_ID SELECTION_ID",
		Short: "Place a limit order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			selectionID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid selection id %q: %w", args[1], err)
			}
			inst, err := betting.NewPlaceInstructionBuilder(selectionID).
				Side(core.Side(side)).
				Limit(price, size, core.PersistenceType(persistence)).
				CustomerOrderRef(ref).
				Build()
			if err != nil {
				return err
			}

			token, err := a.sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			report, err := a.ex.Betting.PlaceOrders(cmd.Context(), token, &betting.PlaceOrdersRequest{
				MarketID:     args[0],
				Instructions: []betting.PlaceInstruction{inst},
			})
			if err != nil {
				return err
			}
			if !report.IsSuccess() {
				a.logger.Warn().Str("status", string(report.Status)).Str("error_code", report.ErrorCode).Msg("order not placed")
			}
			return printJSON(cmd, report)
		},
	}
	cmd.Flags().StringVar(&side, "side", string(core.SideBack), "BACK or LAY")
	cmd.Flags().Float64Var(&price, "price", 0, "limit price on the Betfair ladder")
	cmd.Flags().Float64Var(&size, "size", 0, "stake in account currency")
	cmd.Flags().StringVar(&persistence, "persistence", string(core.PersistenceLapse), "LAPSE, PERSIST or MARKET_ON_CLOSE")
	cmd.Flags().StringVar(&ref, "ref", "", "customer order ref (generated when empty)")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

func (a *app) cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [MARKET_ID [BET_ID...]]",
		Short: "Cancel unmatched bets; with no arguments every unmatched bet is cancelled",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &betting.CancelOrdersRequest{}
			if len(args) > 0 {
				req.MarketID = args[0]
				for _, id := range args[1:] {
					req.Instructions = append(req.Instructions, betting.CancelInstruction{BetID: id})
				}
			}
			token, err := a.sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			report, err := a.ex.Betting.CancelOrders(cmd.Context(), token, req)
			if err != nil {
				return err
			}
			return printJSON(cmd, report)
		},
	}
}
