package main

import (
	"log"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
)

type Trip struct {
	VendorID       int64     `parquet:"VendorID"`
	PickupTime     time.Time `parquet:"tpep_pickup_datetime,timestamp(millisecond)"`
	DropoffTime    time.Time `parquet:"tpep_dropoff_datetime,timestamp(millisecond)"`
	PassengerCount int32     `parquet:"passenger_count"`
	TripDistance   float64   `parquet:"trip_distance"`
	FareAmount     float64   `parquet:"fare_amount"`
	TipAmount      float64   `parquet:"tip_amount"`
	TotalAmount    float64   `parquet:"total_amount"`
	PaymentType    string    `parquet:"payment_type"`
	StoreAndFwd    bool      `parquet:"store_and_fwd_flag"`
}

func main() {
	pickup := func(hour, min int) time.Time {
		return time.Date(2024, 1, 15, hour, min, 0, 0, time.UTC)
	}

	trips := []Trip{
		{VendorID: 1, PickupTime: pickup(8, 5), DropoffTime: pickup(8, 21), PassengerCount: 1, TripDistance: 2.4, FareAmount: 12.5, TipAmount: 2.5, TotalAmount: 15.0, PaymentType: "card", StoreAndFwd: false},
		{VendorID: 2, PickupTime: pickup(9, 30), DropoffTime: pickup(9, 48), PassengerCount: 2, TripDistance: 4.1, FareAmount: 18.0, TipAmount: 3.6, TotalAmount: 21.6, PaymentType: "card", StoreAndFwd: false},
		{VendorID: 1, PickupTime: pickup(12, 0), DropoffTime: pickup(12, 9), PassengerCount: 1, TripDistance: 1.1, FareAmount: 7.0, TipAmount: 0, TotalAmount: 7.0, PaymentType: "cash", StoreAndFwd: true},
		{VendorID: 2, PickupTime: pickup(17, 45), DropoffTime: pickup(18, 20), PassengerCount: 3, TripDistance: 8.9, FareAmount: 32.5, TipAmount: 6.5, TotalAmount: 39.0, PaymentType: "card", StoreAndFwd: false},
		{VendorID: 1, PickupTime: pickup(23, 10), DropoffTime: pickup(23, 34), PassengerCount: 1, TripDistance: 6.3, FareAmount: 24.0, TipAmount: 0, TotalAmount: 24.0, PaymentType: "cash", StoreAndFwd: false},
	}

	file, err := os.Create("trips.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Trip](file)
	defer writer.Close()

	if _, err := writer.Write(trips); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated trips.parquet with 5 trips")
}
