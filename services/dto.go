package services

import (
	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

// Response shapes. Dates travel as ISO strings and enums by name; the
// numeric indices are accepted on input only.

type BookingDTO struct {
	BookingID       uint              `json:"bookingId"`
	CheckInDate     string            `json:"checkInDate"`
	CheckOutDate    string            `json:"checkOutDate"`
	BookingStatus   string            `json:"bookingStatus"`
	BookingVoucher  string            `json:"bookingVoucher"`
	CustomerName    string            `json:"customerName"`
	RoomNumber      string            `json:"roomNumber"`
	ServiceUsages   []ServiceUsageDTO `json:"serviceUsages"`
	FinalTotalPrice string            `json:"finalTotalPrice,omitempty"`
}

func BookingToDTO(b *models.Booking) BookingDTO {
	usages := make([]ServiceUsageDTO, 0, len(b.ServiceUsages))
	for i := range b.ServiceUsages {
		usages = append(usages, ServiceUsageToDTO(&b.ServiceUsages[i]))
	}
	return BookingDTO{
		BookingID:      b.ID,
		CheckInDate:    utils.FormatDate(b.CheckInDate),
		CheckOutDate:   utils.FormatDate(b.CheckOutDate),
		BookingStatus:  string(b.BookingStatus),
		BookingVoucher: b.BookingVoucher.String(),
		CustomerName:   b.Customer.LastName + " " + b.Customer.FirstName,
		RoomNumber:     b.Room.RoomNumber,
		ServiceUsages:  usages,
	}
}

func BookingsToDTO(bookings []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, BookingToDTO(&bookings[i]))
	}
	return out
}

type BookingHistoryDTO struct {
	BookHistoryID      uint   `json:"bookHistoryId"`
	Seq                uint   `json:"seq"`
	ActualCheckInDate  string `json:"actualCheckInDate"`
	ActualCheckOutDate string `json:"actualCheckOutDate"`
	HistoryType        string `json:"historyType"`
	Note               string `json:"note"`
	ChangeDate         string `json:"changeDate,omitempty"`
	FinalTotalPrice    string `json:"finalTotalPrice,omitempty"`
	BookingID          uint   `json:"bookingId"`
	RoomNumber         string `json:"roomNumber"`
}

func BookingHistoryToDTO(bh *models.BookingHistory) BookingHistoryDTO {
	dto := BookingHistoryDTO{
		BookHistoryID:      bh.ID,
		Seq:                bh.Seq,
		ActualCheckInDate:  utils.FormatDate(bh.ActualCheckInDate),
		ActualCheckOutDate: utils.FormatDate(bh.ActualCheckOutDate),
		HistoryType:        string(bh.HistoryType),
		Note:               bh.Note,
		ChangeDate:         utils.FormatDatePtr(bh.ChangeDate),
		BookingID:          bh.BookingID,
		RoomNumber:         bh.Room.RoomNumber,
	}
	if bh.FinalTotalPrice.Valid {
		dto.FinalTotalPrice = bh.FinalTotalPrice.Decimal.String()
	}
	return dto
}

func BookingHistoriesToDTO(entries []models.BookingHistory) []BookingHistoryDTO {
	out := make([]BookingHistoryDTO, 0, len(entries))
	for i := range entries {
		out = append(out, BookingHistoryToDTO(&entries[i]))
	}
	return out
}

type ServiceUsageDTO struct {
	ServiceUsageID uint   `json:"serviceUsageId"`
	NumOfUsers     int    `json:"numOfUsers"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	ServiceVoucher string `json:"serviceVoucher"`
	TotalPrice     string `json:"totalPrice"`
	ServiceName    string `json:"serviceName"`
	BookingID      uint   `json:"bookingId"`
}

func ServiceUsageToDTO(su *models.ServiceUsage) ServiceUsageDTO {
	return ServiceUsageDTO{
		ServiceUsageID: su.ID,
		NumOfUsers:     su.NumOfUsers,
		StartDate:      utils.FormatDate(su.StartDate),
		EndDate:        utils.FormatDate(su.EndDate),
		ServiceVoucher: su.ServiceVoucher.String(),
		TotalPrice:     su.TotalPrice.String(),
		ServiceName:    su.Service.ServiceName,
		BookingID:      su.BookingID,
	}
}

func ServiceUsagesToDTO(usages []models.ServiceUsage) []ServiceUsageDTO {
	out := make([]ServiceUsageDTO, 0, len(usages))
	for i := range usages {
		out = append(out, ServiceUsageToDTO(&usages[i]))
	}
	return out
}

type PaymentDTO struct {
	PaymentID     uint   `json:"paymentId"`
	PaymentDate   string `json:"paymentDate"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
	BookingID     uint   `json:"bookingId"`
}

func PaymentToDTO(p *models.Payment) PaymentDTO {
	return PaymentDTO{
		PaymentID:     p.ID,
		PaymentDate:   utils.FormatDate(p.PaymentDate),
		Amount:        p.Amount.String(),
		PaymentMethod: string(p.PaymentMethod),
		PaymentStatus: string(p.PaymentStatus),
		BookingID:     p.BookingID,
	}
}

func PaymentsToDTO(payments []models.Payment) []PaymentDTO {
	out := make([]PaymentDTO, 0, len(payments))
	for i := range payments {
		out = append(out, PaymentToDTO(&payments[i]))
	}
	return out
}

type RoomDTO struct {
	RoomID     uint       `json:"roomId"`
	RoomNumber string     `json:"roomNumber"`
	RoomType   string     `json:"roomType"`
	Price      string     `json:"price"`
	RoomStatus string     `json:"roomStatus"`
	Photos     []PhotoDTO `json:"photos"`
}

func RoomToDTO(r *models.Room) RoomDTO {
	photos := make([]PhotoDTO, 0, len(r.Photos))
	for i := range r.Photos {
		photos = append(photos, PhotoToDTO(&r.Photos[i]))
	}
	return RoomDTO{
		RoomID:     r.ID,
		RoomNumber: r.RoomNumber,
		RoomType:   string(r.RoomType),
		Price:      r.Price.String(),
		RoomStatus: string(r.RoomStatus),
		Photos:     photos,
	}
}

func RoomsToDTO(rooms []models.Room) []RoomDTO {
	out := make([]RoomDTO, 0, len(rooms))
	for i := range rooms {
		out = append(out, RoomToDTO(&rooms[i]))
	}
	return out
}

// RoomPageResponse is the paginated room listing envelope.
type RoomPageResponse struct {
	Rooms         []RoomDTO `json:"rooms"`
	PageNumber    int       `json:"pageNumber"`
	PageSize      int       `json:"pageSize"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	IsLast        bool      `json:"isLast"`
}

type PhotoDTO struct {
	PhotoID uint   `json:"photoId"`
	Name    string `json:"name"`
	RoomID  uint   `json:"roomId"`
}

func PhotoToDTO(p *models.Photo) PhotoDTO {
	return PhotoDTO{PhotoID: p.ID, Name: p.Name, RoomID: p.RoomID}
}

func PhotosToDTO(photos []models.Photo) []PhotoDTO {
	out := make([]PhotoDTO, 0, len(photos))
	for i := range photos {
		out = append(out, PhotoToDTO(&photos[i]))
	}
	return out
}
