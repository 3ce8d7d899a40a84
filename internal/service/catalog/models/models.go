package models

import (
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// Request модели

// ServiceTypeRequest данные для создания или изменения типа услуги
type ServiceTypeRequest struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
	Capacity        int      `json:"capacity"`
}

// Response модели

// ServiceTypeResponse ответ с данными типа услуги
type ServiceTypeResponse struct {
	ID              int64     `json:"id"`
	WorkspaceID     int64     `json:"workspaceId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           *float64  `json:"price,omitempty"`
	Capacity        int       `json:"capacity"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceTypeListResponse ответ со списком типов услуг
type ServiceTypeListResponse struct {
	ServiceTypes []ServiceTypeResponse `json:"serviceTypes"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(st *domain.ServiceType) *ServiceTypeResponse {
	if st == nil {
		return nil
	}
	return &ServiceTypeResponse{
		ID:              st.ID,
		WorkspaceID:     st.WorkspaceID,
		Name:            st.Name,
		Description:     st.Description,
		DurationMinutes: st.DurationMinutes,
		Price:           st.Price,
		Capacity:        st.Capacity,
		IsActive:        st.IsActive,
		CreatedAt:       st.CreatedAt,
		UpdatedAt:       st.UpdatedAt,
	}
}

// FromDomainList конвертирует список domain моделей в DTO
func FromDomainList(list []domain.ServiceType) *ServiceTypeListResponse {
	resp := &ServiceTypeListResponse{ServiceTypes: make([]ServiceTypeResponse, 0, len(list))}
	for i := range list {
		resp.ServiceTypes = append(resp.ServiceTypes, *FromDomain(&list[i]))
	}
	return resp
}
