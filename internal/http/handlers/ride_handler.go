// README: Ride search handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Blast-git/Journey-Sync/internal/modules/ride"
	"github.com/Blast-git/Journey-Sync/internal/types"
)

type RideHandler struct {
	rides *ride.Service
}

func NewRideHandler(svc *ride.Service) *RideHandler {
	return &RideHandler{rides: svc}
}

type rideResponse struct {
	ID             string  `json:"id"`
	FromCity       string  `json:"from_city"`
	ToCity         string  `json:"to_city"`
	PickupPoint    string  `json:"pickup_point"`
	DepartureDate  string  `json:"departure_date"`
	DepartureTime  string  `json:"departure_time"`
	PricePerSeat   int64   `json:"price_per_seat"`
	AvailableSeats int     `json:"available_seats"`
	DriverName     string  `json:"driver_name"`
	DriverRating   float64 `json:"driver_rating"`
	VehicleModel   string  `json:"vehicle_model"`
	VehicleColor   string  `json:"vehicle_color"`
}

func (h *RideHandler) Search(c *gin.Context) {
	minSeats, _ := strconv.Atoi(c.Query("min_seats"))
	listings, err := h.rides.Search(c.Request.Context(), ride.SearchFilter{
		FromCity: c.Query("from"),
		ToCity:   c.Query("to"),
		Date:     c.Query("date"),
		MinSeats: minSeats,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	out := make([]rideResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, rideResponse{
			ID:             string(l.Ride.ID),
			FromCity:       l.Ride.FromCity,
			ToCity:         l.Ride.ToCity,
			PickupPoint:    l.Ride.PickupPoint,
			DepartureDate:  l.Ride.DepartureDate,
			DepartureTime:  l.Ride.DepartureTime,
			PricePerSeat:   l.Ride.PricePerSeat.Amount,
			AvailableSeats: l.Ride.AvailableSeats,
			DriverName:     l.DriverName,
			DriverRating:   l.DriverRating,
			VehicleModel:   l.Vehicle.Brand + " " + l.Vehicle.CarModel,
			VehicleColor:   l.Vehicle.Color,
		})
	}
	c.JSON(http.StatusOK, gin.H{"rides": out})
}

func (h *RideHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing ride id")
		return
	}
	l, err := h.rides.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rideResponse{
		ID:             string(l.Ride.ID),
		FromCity:       l.Ride.FromCity,
		ToCity:         l.Ride.ToCity,
		PickupPoint:    l.Ride.PickupPoint,
		DepartureDate:  l.Ride.DepartureDate,
		DepartureTime:  l.Ride.DepartureTime,
		PricePerSeat:   l.Ride.PricePerSeat.Amount,
		AvailableSeats: l.Ride.AvailableSeats,
		DriverName:     l.DriverName,
		DriverRating:   l.DriverRating,
		VehicleModel:   l.Vehicle.Brand + " " + l.Vehicle.CarModel,
		VehicleColor:   l.Vehicle.Color,
	})
}
