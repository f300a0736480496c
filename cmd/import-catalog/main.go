package main

import (
	"flag"
	"log"

	"airwayserver/database"
	"airwayserver/importer"
)

// Утилита импорта каталога устройств в базу данных.
// Поддерживает JSON, Excel и CSV (UTF-8 или Windows-1251).
func main() {
	dbPath := flag.String("db", "airway_catalog.db", "путь к базе каталогов")
	filePath := flag.String("file", "", "файл каталога (.json, .xlsx, .csv)")
	kindFlag := flag.String("kind", "", "вид устройств: sad или ett")
	flag.Parse()

	if *filePath == "" || *kindFlag == "" {
		flag.Usage()
		log.Fatal("Требуются флаги -file и -kind")
	}

	var kind importer.DeviceKind
	switch *kindFlag {
	case string(importer.KindSAD):
		kind = importer.KindSAD
	case string(importer.KindETT):
		kind = importer.KindETT
	default:
		log.Fatalf("Неизвестный вид устройств %q, допустимы sad и ett", *kindFlag)
	}

	db, err := database.NewDB(*dbPath)
	if err != nil {
		log.Fatalf("Ошибка открытия базы данных: %v", err)
	}
	defer db.Close()

	ci := importer.NewCatalogImporter(db)
	result, err := ci.ImportFile(*filePath, kind)
	if err != nil {
		log.Fatalf("Ошибка импорта: %v", err)
	}

	log.Printf("Импорт завершен: всего %d, загружено %d, пропущено %d, время %s",
		result.Total, result.Success, result.Skipped, result.Duration)
	for _, msg := range result.Errors {
		log.Printf("  ошибка: %s", msg)
	}
}
