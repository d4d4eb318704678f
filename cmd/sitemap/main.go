// Command sitemap writes sitemap.xml for the storefront: the static pages
// plus every active product.
package main

import (
	"encoding/xml"
	"flag"
	"log"
	"os"
	"time"

	"github.com/smartcleaners/SMART-CLEANERS/internal/config"
	"github.com/smartcleaners/SMART-CLEANERS/internal/database"
	"github.com/smartcleaners/SMART-CLEANERS/internal/models"
)

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var staticRoutes = []struct {
	path       string
	changeFreq string
	priority   float64
}{
	{"/", "weekly", 1.0},
	{"/about", "monthly", 0.8},
	{"/categories", "weekly", 0.9},
	{"/bulk-orders", "monthly", 0.8},
	{"/combos", "weekly", 0.8},
	{"/contact", "yearly", 0.6},
}

func main() {
	out := flag.String("out", "sitemap.xml", "output file")
	flag.Parse()

	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	lastMod := time.Now().Format("2006-01-02")

	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, route := range staticRoutes {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        cfg.SiteBaseURL + route.path,
			LastMod:    lastMod,
			ChangeFreq: route.changeFreq,
			Priority:   route.priority,
		})
	}

	var products []models.Product
	if err := db.Where("is_active = ?", true).Find(&products).Error; err != nil {
		log.Fatalf("loading products: %v", err)
	}

	for _, product := range products {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        cfg.SiteBaseURL + "/products/" + product.ID.String(),
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   0.7,
		})
	}

	file, err := os.Create(*out)
	if err != nil {
		log.Fatalf("creating %s: %v", *out, err)
	}
	defer file.Close()

	if _, err := file.WriteString(xml.Header); err != nil {
		log.Fatalf("writing header: %v", err)
	}

	encoder := xml.NewEncoder(file)
	encoder.Indent("", "  ")
	if err := encoder.Encode(set); err != nil {
		log.Fatalf("encoding sitemap: %v", err)
	}

	log.Printf("sitemap written to %s with %d urls", *out, len(set.URLs))
}
