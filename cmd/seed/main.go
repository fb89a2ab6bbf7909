// Command seed populates the database with a demo user, a category and a
// batch of published bilingual articles for local development.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/sahelmedia/newsroom/config"
	"github.com/sahelmedia/newsroom/internal/db"
	"github.com/sahelmedia/newsroom/internal/newsroom"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	cfg      config.Config
)

type sample struct {
	title    string
	subtitle string
	locale   string
}

var samples = []sample{
	{"Le gouvernement annonce un plan de relance économique", "Les détails du plan seront présentés au parlement la semaine prochaine", db.LocaleFr},
	{"الحكومة تعلن عن خطة إنعاش اقتصادي جديدة", "تفاصيل الخطة ستعرض على البرلمان الأسبوع المقبل", db.LocaleAr},
	{"La récolte oléicole dépasse les prévisions cette saison", "Les exportateurs tablent sur une année record", db.LocaleFr},
	{"موسم الزيتون يتجاوز التوقعات هذا العام", "المصدرون يتوقعون سنة قياسية", db.LocaleAr},
	{"Le festival de la médina attire un public record", "Dix jours de concerts et d'expositions dans la vieille ville", db.LocaleFr},
	{"مهرجان المدينة يستقطب جمهورا قياسيا", "عشرة أيام من الحفلات والمعارض في المدينة العتيقة", db.LocaleAr},
	{"Les pluies printanières soulagent les agriculteurs du nord", "Les barrages retrouvent un niveau de remplissage satisfaisant", db.LocaleFr},
	{"أمطار الربيع تنعش فلاحي الشمال", "السدود تستعيد مستوى تعبئة مرضيا", db.LocaleAr},
	{"Une nouvelle ligne ferroviaire reliera la capitale au sud", "Les travaux devraient durer trois ans", db.LocaleFr},
	{"خط سككي جديد سيربط العاصمة بالجنوب", "الأشغال ستدوم ثلاث سنوات", db.LocaleAr},
}

func main() {
	flag.Parse()

	lg := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if _, err := toml.DecodeFile(*flConfig, &cfg); err != nil {
		lg.Error("config load failed", "error", err)
		os.Exit(1)
	}

	dbc := pg.Connect(&cfg.Database)
	defer dbc.Close()

	ctx := context.Background()
	if err := dbc.Ping(ctx); err != nil {
		lg.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	manager := newsroom.NewManager(db.New(dbc))

	if err := seed(ctx, manager, lg); err != nil {
		lg.Error("seed failed", "error", err)
		os.Exit(1)
	}

	lg.Info("database populated", "articles", len(samples))
}

func seed(ctx context.Context, manager *newsroom.Manager, lg *slog.Logger) error {
	user, err := manager.UserByEmail(ctx, "demo@example.com")
	if err != nil {
		return err
	}
	if user == nil {
		roleName := db.RoleJournalist
		user, err = manager.CreateUser(ctx, newsroom.UserParams{
			Email:    "demo@example.com",
			Name:     "Demo User",
			Password: "password",
			RoleName: &roleName,
		})
		if err != nil {
			return err
		}
		lg.Info("created user", "email", user.Email)
	}

	category, err := manager.CategoryBySlug(ctx, "actualites")
	if err != nil {
		return err
	}
	if category == nil {
		category, err = manager.CreateCategory(ctx, newsroom.CategoryParams{
			NameFr: "Actualités",
			NameAr: "أخبار",
			Slug:   "actualites",
		})
		if err != nil {
			return err
		}
		lg.Info("created category", "slug", category.Slug)
	}

	for i, s := range samples {
		slug := newsroom.Slugify(s.title)
		if slug == "" {
			// Arabic titles have no Latin transliteration here.
			slug = fmt.Sprintf("article-%d", i+1)
		}
		taken, err := manager.ArticleSlugExists(ctx, slug)
		if err != nil {
			return err
		}
		if taken {
			slug = fmt.Sprintf("%s-%d", slug, i)
		}

		subtitle := s.subtitle
		publishDate := time.Now().AddDate(0, 0, -i*3)

		_, err = manager.CreateArticle(ctx, newsroom.ArticleParams{
			Title:       s.title,
			Subtitle:    &subtitle,
			Locale:      s.locale,
			Slug:        slug,
			Body:        sampleBody(s.locale),
			AuthorID:    &user.ID,
			CategoryID:  &category.ID,
			Status:      db.StatusPublished,
			PublishDate: &publishDate,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func sampleBody(locale string) string {
	if locale == db.LocaleAr {
		return "هذا نص تجريبي لمقال إخباري. يستخدم هذا المحتوى لأغراض التطوير المحلي فقط ولا يمثل مادة صحفية حقيقية."
	}
	return "Ceci est un texte de démonstration pour un article d'actualité. Ce contenu est utilisé uniquement à des fins de développement local."
}
