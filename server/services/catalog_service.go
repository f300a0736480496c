package services

import (
	"log/slog"
	"sync"

	"airwayserver/catalog"
	"airwayserver/database"
	"airwayserver/normalization"
	apperrors "airwayserver/server/errors"
)

// CatalogService владеет загруженными каталогами устройств и их индексом.
// Каталоги неизменяемы между перезагрузками: Reload заменяет снимок
// целиком под блокировкой, пересчет всегда идет по актуальному снимку.
type CatalogService struct {
	db *database.DB

	mu       sync.RWMutex
	catalogs catalog.Catalogs
	index    *catalog.Index
}

// NewCatalogService создает сервис каталогов с пустым снимком.
// Пустые каталоги - валидное состояние: интерфейс работает без данных.
func NewCatalogService(db *database.DB) *CatalogService {
	return &CatalogService{
		db: db,
		catalogs: catalog.Catalogs{
			SADs: []catalog.DeviceRecord{},
			ETTs: []catalog.DeviceRecord{},
		},
		index: catalog.NewIndex(nil),
	}
}

// buildIndex строит индекс с канонизатором, дополненным псевдонимами
// производителей из базы данных
func (s *CatalogService) buildIndex() *catalog.Index {
	config := normalization.DefaultCanonicalizerConfig()

	if s.db != nil {
		aliases, err := s.db.LoadManufacturerAliases()
		if err != nil {
			slog.Warn("[CatalogService] Failed to load manufacturer aliases, using defaults", "error", err)
		} else {
			for misspelled, corrected := range aliases {
				config.ManufacturerAliases[misspelled] = corrected
			}
		}
	}

	return catalog.NewIndex(normalization.NewCanonicalizer(config))
}

// Reload перечитывает каталоги из базы данных и заменяет снимок
func (s *CatalogService) Reload() error {
	if s.db == nil {
		return apperrors.NewServiceUnavailableError("база данных каталогов недоступна", nil).
			WithContext("CatalogService.Reload")
	}

	catalogs, err := s.db.LoadCatalogs()
	if err != nil {
		return apperrors.NewInternalError("не удалось загрузить каталоги из базы данных", err).
			WithContext("CatalogService.Reload")
	}

	index := s.buildIndex()

	s.mu.Lock()
	s.catalogs = catalogs
	s.index = index
	s.mu.Unlock()

	slog.Info("[CatalogService] Catalogs reloaded",
		"sad_records", len(catalogs.SADs),
		"ett_records", len(catalogs.ETTs),
	)
	return nil
}

// LoadFromFiles загружает каталоги из JSON файлов и сохраняет их в базу.
// Недоступный или поврежденный файл деградирует до пустого каталога,
// ошибки только логируются: сервер стартует и с частичными данными.
func (s *CatalogService) LoadFromFiles(sadPath, ettPath string) {
	catalogs := catalog.LoadCatalogs(sadPath, ettPath)

	if s.db != nil {
		if err := s.db.ReplaceSADRecords(catalogs.SADs); err != nil {
			slog.Warn("[CatalogService] Failed to persist SAD catalog", "error", err)
		}
		if err := s.db.ReplaceETTRecords(catalogs.ETTs); err != nil {
			slog.Warn("[CatalogService] Failed to persist ETT catalog", "error", err)
		}
	}

	index := s.buildIndex()

	s.mu.Lock()
	s.catalogs = catalogs
	s.index = index
	s.mu.Unlock()

	slog.Info("[CatalogService] Catalogs loaded from files",
		"sad_path", sadPath,
		"sad_records", len(catalogs.SADs),
		"ett_path", ettPath,
		"ett_records", len(catalogs.ETTs),
	)
}

// Snapshot возвращает текущий снимок каталогов и индекс
func (s *CatalogService) Snapshot() (catalog.Catalogs, *catalog.Index) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalogs, s.index
}

// BrandOptions возвращает отсортированный список брендов воздуховодов
func (s *CatalogService) BrandOptions() []catalog.BrandOption {
	catalogs, index := s.Snapshot()
	return index.BrandOptions(catalogs.SADs)
}

// SizeOptions возвращает отсортированные номинальные размеры бренда
func (s *CatalogService) SizeOptions(brand catalog.BrandKey) ([]float64, error) {
	if brand.IsZero() {
		return nil, apperrors.NewValidationError("бренд воздуховода обязателен", nil)
	}
	catalogs, index := s.Snapshot()
	return index.SizeOptions(catalogs.SADs, brand), nil
}

// TubeOptions возвращает отсортированный список названий трубок
func (s *CatalogService) TubeOptions() []catalog.TubeOption {
	catalogs, index := s.Snapshot()
	return index.TubeOptions(catalogs.ETTs)
}

// KindReport статистика целостности одного каталога
type KindReport struct {
	Records        int `json:"records"`
	MissingName    int `json:"missing_name"`
	MissingInner   int `json:"missing_inner"`
	MissingOuter   int `json:"missing_outer"`
	UnparsedSizes  int `json:"unparsed_sizes"`
	DistinctBrands int `json:"distinct_brands"`
}

// CatalogReport отчет о целостности загруженных каталогов.
// Поврежденные поля не ошибка загрузки, а свойство данных: отчет
// показывает, сколько записей даст вердикт unknown.
type CatalogReport struct {
	SADs KindReport `json:"sads"`
	ETTs KindReport `json:"etts"`
}

// IntegrityReport строит отчет о целостности текущего снимка
func (s *CatalogService) IntegrityReport() CatalogReport {
	catalogs, index := s.Snapshot()

	return CatalogReport{
		SADs: kindReport(index, catalogs.SADs),
		ETTs: kindReport(index, catalogs.ETTs),
	}
}

func kindReport(index *catalog.Index, records []catalog.DeviceRecord) KindReport {
	report := KindReport{Records: len(records)}
	brands := make(map[catalog.BrandKey]bool)

	for _, record := range records {
		key := index.Key(record)
		if key.IsZero() {
			report.MissingName++
		} else {
			brands[key] = true
		}
		if _, ok := record.InternalMM.Value(); !ok {
			report.MissingInner++
		}
		if _, ok := record.ExternalMM.Value(); !ok {
			report.MissingOuter++
		}
		if _, ok := normalization.ParseNominalSize(record.Size.Raw); !ok {
			report.UnparsedSizes++
		}
	}

	report.DistinctBrands = len(brands)
	return report
}
