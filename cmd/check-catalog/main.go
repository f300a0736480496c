package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"airwayserver/database"
	"airwayserver/server/services"
)

// Утилита проверки целостности каталогов: печатает статистику записей
// с нераспознанными диаметрами и размерами.
func main() {
	dbPath := flag.String("db", "airway_catalog.db", "путь к базе каталогов")
	sadPath := flag.String("sad", "", "JSON файл каталога воздуховодов (вместо базы)")
	ettPath := flag.String("ett", "", "JSON файл каталога трубок (вместо базы)")
	flag.Parse()

	var service *services.CatalogService

	if *sadPath != "" || *ettPath != "" {
		service = services.NewCatalogService(nil)
		service.LoadFromFiles(*sadPath, *ettPath)
	} else {
		db, err := database.NewDB(*dbPath)
		if err != nil {
			log.Fatalf("Ошибка открытия базы данных: %v", err)
		}
		defer db.Close()

		service = services.NewCatalogService(db)
		if err := service.Reload(); err != nil {
			log.Fatalf("Ошибка загрузки каталогов: %v", err)
		}
	}

	report := service.IntegrityReport()

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		log.Fatalf("Ошибка вывода отчета: %v", err)
	}

	if report.SADs.Records == 0 && report.ETTs.Records == 0 {
		fmt.Fprintln(os.Stderr, "Предупреждение: каталоги пусты")
	}
}
