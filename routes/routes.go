package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/minhtriet326/Hotel-management-system/controllers"
	"github.com/minhtriet326/Hotel-management-system/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles everything SetupRouter needs to wire.
type Controllers struct {
	Auth      *controllers.AuthController
	Bookings  *controllers.BookingController
	Histories *controllers.BookingHistoryController
	Rooms     *controllers.RoomController
	Customers *controllers.CustomerController
	Catalog   *controllers.ServiceController
	Usages    *controllers.ServiceUsageController
	Payments  *controllers.PaymentController
	Photos    *controllers.PhotoController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)
		auth.POST("/refreshToken", ctl.Auth.Refresh)
	}

	api := r.Group("/api/v1", middleware.Auth())
	{
		booking := api.Group("/booking")
		{
			booking.POST("/reserveRoom/:customerId/:roomId", ctl.Bookings.ReserveRoom)
			booking.PUT("/checkIn/:bookingId", ctl.Bookings.CheckIn)
			booking.PUT("/checkOut/:bookingId", ctl.Bookings.CheckOut)
			booking.PUT("/extendStay/:bookingId", ctl.Bookings.ExtendStay)
			booking.PUT("/changeRoom/:bookingId/:newRoomId", ctl.Bookings.ChangeRoom)
			booking.PUT("/cancelBooking/:bookingId", ctl.Bookings.CancelBooking)
			booking.PUT("/updateBooking/:bookingId/:roomId", ctl.Bookings.UpdateBooking)
			booking.DELETE("/deleteBooking/:bookingId", ctl.Bookings.DeleteBooking)

			booking.GET("/getAllBookings", ctl.Bookings.GetAllBookings)
			booking.GET("/getBookingById/:bookingId", ctl.Bookings.GetBookingByID)
			booking.GET("/getAllBookingsByCheckInDate/:checkInDate", ctl.Bookings.GetAllByCheckInDate)
			booking.GET("/getAllBookingsByCheckOutDate/:checkOutDate", ctl.Bookings.GetAllByCheckOutDate)
			booking.GET("/getAllBookingsByBookingStatus/:bookingStatus", ctl.Bookings.GetAllByStatus)
			booking.GET("/getAllBookingsByCustomer/:customerId", ctl.Bookings.GetAllByCustomer)
			booking.GET("/getAllBookingsByRoom/:roomId", ctl.Bookings.GetAllByRoom)
			booking.GET("/finalTotalPrice/:bookingId", ctl.Bookings.FinalTotalPrice)
		}

		history := api.Group("/bookingHistory")
		{
			history.GET("/getAllBookingHistories", ctl.Histories.GetAll)
			history.GET("/getBookingHistoryById/:bookHistoryId", ctl.Histories.GetByID)
			history.GET("/getAllByActualCheckInDate/:actualCheckInDate", ctl.Histories.GetAllByActualCheckInDate)
			history.GET("/getAllByActualCheckOutDate/:actualCheckOutDate", ctl.Histories.GetAllByActualCheckOutDate)
			history.GET("/getAllByHistoryType/:historyType", ctl.Histories.GetAllByHistoryType)
			history.GET("/getAllByNote/:keyword", ctl.Histories.GetAllByNote)
			history.GET("/getAllByChangeDate/:changeDate", ctl.Histories.GetAllByChangeDate)
			history.GET("/getAllByFinalTotalPriceBetween/:minPrice/:maxPrice", ctl.Histories.GetAllByPriceBetween)
			history.GET("/getAllByBooking/:bookingId", ctl.Histories.GetAllByBooking)
			history.GET("/getAllByRoom/:roomId", ctl.Histories.GetAllByRoom)
			history.PUT("/updateBookingHistory/:bookHistoryId", ctl.Histories.UpdateBookingHistory)
			history.DELETE("/deleteBookingHistory/:bookHistoryId", ctl.Histories.DeleteBookingHistory)
		}

		room := api.Group("/room")
		{
			room.POST("/createRoom", ctl.Rooms.CreateRoom)
			room.GET("/getAllRooms", ctl.Rooms.GetAllRooms)
			room.GET("/getRoomById/:roomId", ctl.Rooms.GetRoomByID)
			room.GET("/getRoomByRoomNumber/:roomNumber", ctl.Rooms.GetRoomByNumber)
			room.GET("/getAllRoomsByRoomType/:roomType", ctl.Rooms.GetAllByRoomType)
			room.GET("/getAllRoomsByRoomStatus/:roomStatus", ctl.Rooms.GetAllByRoomStatus)
			room.GET("/getAllRoomsByPriceBetween/:minPrice/:maxPrice", ctl.Rooms.GetAllByPriceBetween)
			room.PUT("/updateRoom/:roomId", ctl.Rooms.UpdateRoom)
			room.DELETE("/deleteRoom/:roomId", ctl.Rooms.DeleteRoom)
		}

		customer := api.Group("/customer")
		{
			customer.POST("/createCustomer", ctl.Customers.CreateCustomer)
			customer.GET("/getAllCustomers", ctl.Customers.GetAllCustomers)
			customer.GET("/getCustomerById/:customerId", ctl.Customers.GetCustomerByID)
			customer.GET("/getCustomerByEmail/:email", ctl.Customers.GetCustomerByEmail)
			customer.GET("/getCustomerByPhoneNumber/:phoneNumber", ctl.Customers.GetCustomerByPhoneNumber)
			customer.GET("/getAllCustomersByName/:keyword", ctl.Customers.GetAllByName)
			customer.PUT("/updateCustomer/:customerId", ctl.Customers.UpdateCustomer)
			customer.DELETE("/deleteCustomer/:customerId", ctl.Customers.DeleteCustomer)
		}

		service := api.Group("/service")
		{
			service.POST("/createService", ctl.Catalog.CreateService)
			service.GET("/getAllServices", ctl.Catalog.GetAllServices)
			service.GET("/getServiceById/:serviceId", ctl.Catalog.GetServiceByID)
			service.GET("/getServiceByServiceName/:serviceName", ctl.Catalog.GetServiceByName)
			service.GET("/getAllServicesByPriceBetween/:minPrice/:maxPrice", ctl.Catalog.GetAllByPriceBetween)
			service.PUT("/updateService/:serviceId", ctl.Catalog.UpdateService)
			service.DELETE("/deleteService/:serviceId", ctl.Catalog.DeleteService)
		}

		usage := api.Group("/serviceUsage")
		{
			usage.POST("/createServiceUsage/:bookingId/:serviceId", ctl.Usages.CreateServiceUsage)
			usage.GET("/getAllServiceUsages", ctl.Usages.GetAllServiceUsages)
			usage.GET("/getServiceUsageById/:serviceUsageId", ctl.Usages.GetServiceUsageByID)
			usage.GET("/getAllByNumOfUsers/:numOfUsers", ctl.Usages.GetAllByNumOfUsers)
			usage.GET("/getAllByStartDate/:startDate", ctl.Usages.GetAllByStartDate)
			usage.GET("/getAllByEndDate/:endDate", ctl.Usages.GetAllByEndDate)
			usage.GET("/getAllByServiceVoucher/:serviceVoucher", ctl.Usages.GetAllByServiceVoucher)
			usage.GET("/getAllByTotalPriceBetween/:minPrice/:maxPrice", ctl.Usages.GetAllByPriceBetween)
			usage.GET("/getAllByService/:serviceId", ctl.Usages.GetAllByService)
			usage.GET("/getAllByBooking/:bookingId", ctl.Usages.GetAllByBooking)
			usage.GET("/totalServicePriceOfBooking/:bookingId", ctl.Usages.TotalServicePriceOfBooking)
			usage.PUT("/updateServiceUsage/:serviceUsageId/:bookingId/:serviceId", ctl.Usages.UpdateServiceUsage)
			usage.DELETE("/deleteServiceUsage/:serviceUsageId", ctl.Usages.DeleteServiceUsage)
		}

		payment := api.Group("/payment")
		{
			payment.POST("/createPayment/:bookingId", ctl.Payments.CreatePayment)
			payment.GET("/getAllPayments", ctl.Payments.GetAllPayments)
			payment.GET("/getPaymentById/:paymentId", ctl.Payments.GetPaymentByID)
			payment.GET("/getPaymentByBooking/:bookingId", ctl.Payments.GetPaymentByBooking)
			payment.PUT("/updatePayment/:paymentId", ctl.Payments.UpdatePayment)
			payment.DELETE("/deletePayment/:paymentId", ctl.Payments.DeletePayment)
		}

		photo := api.Group("/photo")
		{
			photo.POST("/addPhotos/:roomId", ctl.Photos.AddPhotos)
			photo.GET("/getAllPhotos", ctl.Photos.GetAllPhotos)
			photo.GET("/getPhotoById/:photoId", ctl.Photos.GetPhotoByID)
			photo.GET("/getAllByRoom/:roomId", ctl.Photos.GetAllByRoom)
			photo.GET("/file/:fileName", ctl.Photos.ServeFile)
			photo.DELETE("/deletePhoto/:photoId", ctl.Photos.DeletePhoto)
			photo.DELETE("/deleteAllByRoom/:roomId", ctl.Photos.DeleteAllByRoom)
		}
	}

	return r
}
