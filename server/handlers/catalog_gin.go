package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"airwayserver/catalog"
	"airwayserver/server/services"
)

// CatalogHandler обработчики справочных эндпоинтов каталога
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler создает обработчик каталога
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// BrandsResponse список брендов воздуховодов
type BrandsResponse struct {
	Brands []catalog.BrandOption `json:"brands"`
}

// SizesResponse номинальные размеры выбранного бренда
type SizesResponse struct {
	Brand catalog.BrandKey `json:"brand"`
	Sizes []float64        `json:"sizes"`
}

// TubesResponse список моделей трубок
type TubesResponse struct {
	Tubes []catalog.TubeOption `json:"tubes"`
}

// HandleBrandsGin обработчик списка брендов воздуховодов
// @Summary Список брендов воздуховодов
// @Description Возвращает дедуплицированный отсортированный список брендов надгортанных воздуховодов
// @Tags catalog
// @Produce json
// @Success 200 {object} BrandsResponse "Список брендов"
// @Router /api/catalog/brands [get]
func (h *CatalogHandler) HandleBrandsGin(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, BrandsResponse{
		Brands: h.catalogService.BrandOptions(),
	})
}

// HandleSizesGin обработчик номинальных размеров бренда
// @Summary Номинальные размеры бренда
// @Description Возвращает отсортированные номинальные размеры выбранного бренда воздуховода
// @Tags catalog
// @Produce json
// @Param name query string true "Канонический ключ названия устройства"
// @Param manufacturer query string false "Канонический ключ производителя"
// @Success 200 {object} SizesResponse "Размеры бренда"
// @Failure 400 {object} ErrorResponse "Не указан бренд"
// @Router /api/catalog/sizes [get]
func (h *CatalogHandler) HandleSizesGin(c *gin.Context) {
	brand := catalog.BrandKey{
		Name:         c.Query("name"),
		Manufacturer: c.Query("manufacturer"),
	}

	sizes, err := h.catalogService.SizeOptions(brand)
	if err != nil {
		SendAppError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, SizesResponse{Brand: brand, Sizes: sizes})
}

// HandleTubesGin обработчик списка моделей трубок
// @Summary Список моделей эндотрахеальных трубок
// @Description Возвращает дедуплицированный отсортированный список моделей трубок каталога
// @Tags catalog
// @Produce json
// @Success 200 {object} TubesResponse "Список трубок"
// @Router /api/catalog/tubes [get]
func (h *CatalogHandler) HandleTubesGin(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, TubesResponse{
		Tubes: h.catalogService.TubeOptions(),
	})
}

// HandleReportGin обработчик отчета о целостности каталогов
// @Summary Отчет о целостности каталогов
// @Description Возвращает статистику загруженных каталогов: число записей, нераспознанные диаметры и размеры
// @Tags catalog
// @Produce json
// @Success 200 {object} services.CatalogReport "Отчет о целостности"
// @Router /api/catalog/report [get]
func (h *CatalogHandler) HandleReportGin(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, h.catalogService.IntegrityReport())
}

// HandleReloadGin обработчик перезагрузки каталогов из базы данных
// @Summary Перезагрузить каталоги
// @Description Перечитывает каталоги устройств и псевдонимы производителей из базы данных
// @Tags catalog
// @Produce json
// @Success 200 {object} services.CatalogReport "Отчет после перезагрузки"
// @Failure 500 {object} ErrorResponse "Ошибка перезагрузки"
// @Failure 503 {object} ErrorResponse "База данных недоступна"
// @Router /api/catalog/reload [post]
func (h *CatalogHandler) HandleReloadGin(c *gin.Context) {
	if err := h.catalogService.Reload(); err != nil {
		SendAppError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, h.catalogService.IntegrityReport())
}
