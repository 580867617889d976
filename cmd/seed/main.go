package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/ptcharoen/agrirot/internal/domain"
	"github.com/ptcharoen/agrirot/internal/pkg/constants"
	"github.com/ptcharoen/agrirot/internal/pkg/logger"
	"github.com/ptcharoen/agrirot/internal/pkg/store"
	"github.com/ptcharoen/agrirot/internal/pkg/store/xpgx"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Development seed: the reference MoA groups plus a handful of targets,
// products and one active planting to exercise the rotation endpoints
// locally.

type seedGroup struct {
	system string
	code   string
	name   string
	risk   domain.ResistanceRisk
}

var moaGroups = []seedGroup{
	{domain.SystemIRAC, "4A", "Neonicotinoids", domain.ResistanceRiskMedium},
	{domain.SystemIRAC, "3A", "Pyrethroids", domain.ResistanceRiskHigh},
	{domain.SystemIRAC, "28", "Diamides", domain.ResistanceRiskLow},
	{domain.SystemIRAC, "1B", "Organophosphates", domain.ResistanceRiskMedium},
	{domain.SystemIRAC, "6", "Avermectins", domain.ResistanceRiskLow},
	{domain.SystemFRAC, "3", "DMI Fungicides", domain.ResistanceRiskMedium},
	{domain.SystemFRAC, "11", "Strobilurins", domain.ResistanceRiskHigh},
	{domain.SystemFRAC, "7", "SDHI", domain.ResistanceRiskMedium},
	{domain.SystemFRAC, "M", "Multi-site Contact", domain.ResistanceRiskLow},
	{domain.SystemHRAC, "B", "ALS Inhibitors", domain.ResistanceRiskHigh},
	{domain.SystemHRAC, "G", "EPSPS Inhibitors", domain.ResistanceRiskMedium},
}

type seedProduct struct {
	name       string
	ingredient string
	ptype      string
	moaCode    string
	rateMin    string
	rateMax    string
	rateUnit   string
	// target name -> efficacy 1..5
	targets map[string]int
}

var targets = []domain.Target{
	{TargetName: "Thrips", ScientificName: "Thysanoptera spp.", TargetType: "insect"},
	{TargetName: "Aphids", ScientificName: "Aphididae", TargetType: "insect"},
	{TargetName: "Diamondback moth", ScientificName: "Plutella xylostella", TargetType: "insect"},
	{TargetName: "Anthracnose", ScientificName: "Colletotrichum spp.", TargetType: "disease"},
	{TargetName: "Powdery mildew", ScientificName: "Oidium spp.", TargetType: "disease"},
}

var products = []seedProduct{
	{"Provado", "imidacloprid", "insecticide", "4A", "10", "20", "ml/20L",
		map[string]int{"Thrips": 4, "Aphids": 5}},
	{"Karate Zeon", "lambda-cyhalothrin", "insecticide", "3A", "10", "15", "ml/20L",
		map[string]int{"Thrips": 3, "Diamondback moth": 4}},
	{"Prevathon", "chlorantraniliprole", "insecticide", "28", "20", "30", "ml/20L",
		map[string]int{"Thrips": 4, "Diamondback moth": 5}},
	{"Vertimec", "abamectin", "insecticide", "6", "5", "10", "ml/20L",
		map[string]int{"Thrips": 5, "Aphids": 3}},
	{"Score", "difenoconazole", "fungicide", "3", "10", "20", "ml/20L",
		map[string]int{"Anthracnose": 4, "Powdery mildew": 4}},
	{"Amistar", "azoxystrobin", "fungicide", "11", "5", "10", "ml/20L",
		map[string]int{"Anthracnose": 5, "Powdery mildew": 3}},
}

func main() {
	viper.SetEnvPrefix("agrirot")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	logger.Init(true)

	ctx := context.Background()

	pool, err := xpgx.Connect(ctx, viper.GetString(constants.ViperDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	st := store.NewStore(pool)

	groupIDs := make(map[string]int64, len(moaGroups))
	for _, g := range moaGroups {
		saved, err := st.UpsertMoAGroup(ctx, &domain.MoAGroup{
			ClassificationSystem: g.system,
			MoACode:              g.code,
			MechanismName:        g.name,
			ResistanceRisk:       g.risk,
		})
		if err != nil {
			logger.Fatal(ctx, err)
		}
		groupIDs[g.system+"/"+g.code] = saved.ID
	}
	logger.Infof(ctx, "seeded %d moa groups", len(moaGroups))

	targetIDs := make(map[string]int64, len(targets))
	for i := range targets {
		saved, err := st.InsertTarget(ctx, &targets[i])
		if err != nil {
			logger.Fatal(ctx, err)
		}
		targetIDs[saved.TargetName] = saved.ID
	}

	for _, p := range products {
		system := domain.SystemIRAC
		if p.ptype == "fungicide" {
			system = domain.SystemFRAC
		}
		groupID := groupIDs[system+"/"+p.moaCode]

		saved, err := st.InsertProduct(ctx, &domain.Product{
			ProductName:        p.name,
			ActiveIngredient:   p.ingredient,
			ProductType:        p.ptype,
			MoAGroupID:         &groupID,
			RecommendedRateMin: decimal.NewNullDecimal(decimal.RequireFromString(p.rateMin)),
			RecommendedRateMax: decimal.NewNullDecimal(decimal.RequireFromString(p.rateMax)),
			RateUnit:           p.rateUnit,
		})
		if err != nil {
			logger.Fatal(ctx, err)
		}

		for targetName, efficacy := range p.targets {
			if err = st.LinkProductTarget(ctx, saved.ID, targetIDs[targetName], efficacy); err != nil {
				logger.Fatal(ctx, err)
			}
		}
	}
	logger.Infof(ctx, "seeded %d products", len(products))

	planting, err := st.InsertPlanting(ctx, &domain.Planting{
		PlotID:       1,
		CropID:       1,
		PlantingDate: time.Now().AddDate(0, -1, 0),
		Status:       domain.PlantingStatusActive,
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}
	logger.Infof(ctx, "seeded planting %d", planting.ID)

	os.Exit(0)
}
