package main

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lezzetkesif/lezzetkesif/config"
	"github.com/lezzetkesif/lezzetkesif/mockdata"
	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg/listing"
	"github.com/lezzetkesif/lezzetkesif/pkg/logger"
	"github.com/lezzetkesif/lezzetkesif/services"
)

// app, komutların paylaştığı config ve logger. PersistentPreRunE doldurur.
type app struct {
	cfg *config.Config
	log *zap.Logger
}

// newRootCmd, CLI ağacını kurar. Argümansız çalıştırma serve ile aynıdır.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "lezzetkesif",
		Short:        "LezzetKeşif: Ankara restoran rehberi ve blog sunucusu",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// ─── 1. Config ───
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			// ─── 2. Logger ───
			log, err := logger.New(cfg.Log.Level, logger.Format(cfg.Log.Format))
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(a.cfg, a.log)
		},
	}

	root.AddCommand(a.serveCmd(), a.migrateCmd(), a.restaurantsCmd())
	return root
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "HTTP sunucusunu başlatır",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(a.cfg, a.log)
		},
	}
}

// migrateCmd, veritabanı migration'larını çalıştırır ve boşsa mock veriyi yazar.
func (a *app) migrateCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:     "migrate",
		Short:   "Veritabanı şemasını günceller (sqlite veya postgres)",
		Example: `STORE_DRIVER=sqlite lezzetkesif migrate --seed`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Store.Driver == config.StoreMemory {
				return fmt.Errorf("migrate requires STORE_DRIVER=sqlite or postgres")
			}

			db, err := openDatabase(a.cfg, a.log)
			if err != nil {
				return err
			}
			defer db.Close()

			if seed {
				ds, err := mockdata.Load()
				if err != nil {
					return err
				}
				if err := db.Seed(cmd.Context(), ds, services.HashPassword); err != nil {
					return fmt.Errorf("failed to seed database: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("migrations applied"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", true, "boş veritabanına mock veri setini yaz")
	return cmd
}

// restaurantsCmd, restoran listesini sayfa ile aynı filtre ve sayfalama
// kurallarıyla terminalde tablo olarak gösterir.
func (a *app) restaurantsCmd() *cobra.Command {
	var (
		search, cuisine, district, price string
		minRating                        float64
		page                             int
	)

	cmd := &cobra.Command{
		Use:     "restaurants",
		Short:   "Restoranları filtreleyip tablo olarak listeler",
		Example: `lezzetkesif restaurants --cuisine Kebap --page 1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repos, closeRepos, err := initRepositories(cmd.Context(), a.cfg, a.log.Named("store"))
			if err != nil {
				return err
			}
			defer closeRepos()

			q := url.Values{}
			setIf(q, models.QuerySearch, search)
			setIf(q, models.QueryCuisine, cuisine)
			setIf(q, models.QueryDistrict, district)
			setIf(q, models.QueryPrice, price)
			if minRating > 0 {
				q.Set(models.QueryMinRating, strconv.FormatFloat(minRating, 'f', -1, 64))
			}
			q.Set(models.QueryPage, strconv.Itoa(page))

			svc := services.NewRestaurantService(repos.Restaurant, a.cfg.Features.PageSize)
			view, _, err := svc.Browse(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printRestaurants(cmd.OutOrStdout(), view)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&search, "query", "q", "", "isim, açıklama, mutfak veya semtte ara")
	f.StringVar(&cuisine, "cuisine", "", "mutfak türü (ör: Kebap)")
	f.StringVar(&district, "district", "", "semt (ör: Çankaya)")
	f.StringVar(&price, "price", "", "fiyat aralığı ($, $$, $$$, $$$$)")
	f.Float64Var(&minRating, "min-rating", 0, "en düşük puan")
	f.IntVar(&page, "page", 1, "sayfa numarası")
	return cmd
}

func setIf(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

// printRestaurants, görünümün mevcut sayfasını tablo ve özet satırı olarak yazar.
func printRestaurants(w io.Writer, view *listing.View) error {
	if len(view.Page.Items) == 0 {
		_, err := fmt.Fprintln(w, color.YellowString("Sonuç bulunamadı (%d restoran filtreye uydu)", view.FilteredCount))
		return err
	}

	high := color.New(color.FgHiGreen).SprintFunc()
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Ad", "Mutfak", "Semt", "Fiyat", "Puan")
	for _, r := range view.Page.Items {
		rating := strconv.FormatFloat(r.Rating, 'f', 1, 64)
		if r.Rating >= 4.5 {
			rating = high(rating)
		}
		if err := table.Append([]string{r.ID, r.Name, r.CuisineType, r.District, string(r.PriceRange), rating}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	p := view.Page
	_, err := fmt.Fprintf(w, "%d-%d / %d sonuç (sayfa %d/%d)\n", p.Start, p.End, view.FilteredCount, p.Page, p.TotalPages)
	return err
}
