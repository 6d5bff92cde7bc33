// Package docs Inspection Map API.
//
// Бэкенд карты санитарных инспекций ресторанов. Загружает набор данных
// инспекций и отдаёт отфильтрованные проекции для карты, списка и деталей
// заведения, статистику, временную шкалу и рулетку выбора ресторана.
//
// Основные возможности:
// - Маркеры для карты в формате GeoJSON с цветом и размером по нарушениям
// - Фильтры по рейтингу опасности, типу заведения, поиску и дате
// - Рулетка с фильтрами по расстоянию и нарушениям
// - Статистика и журнал загрузок набора данных
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//	- application/geo+json
//
// swagger:meta
package docs
