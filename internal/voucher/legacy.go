package voucher

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedDetails is returned when reservationDetails is not a JSON object
var ErrMalformedDetails = errors.New("voucher: malformed reservation details")

// Legacy callers sent the same value under many names. The chains below are
// tried in order; the first non-empty value wins. Id aliases are resolved
// against the locations / vehicleTypes lists sent with the payload.
var (
	fromNameAliases = []string{
		"from_location_name", "fromLocationName", "from_name", "fromName",
		"pickup_location_name", "pickupLocationName", "pickup_location", "pickupLocation",
		"pickup", "from", "origin", "departure_location", "departureLocation",
	}
	fromIDAliases = []string{"from_location_id", "fromLocationId", "from_location", "fromLocation", "from_id", "fromId"}

	toNameAliases = []string{
		"to_location_name", "toLocationName", "to_name", "toName",
		"dropoff_location_name", "dropoffLocationName", "dropoff_location", "dropoffLocation",
		"dropoff", "to", "destination", "arrival_location", "arrivalLocation",
	}
	toIDAliases = []string{"to_location_id", "toLocationId", "to_location", "toLocation", "to_id", "toId"}

	vehicleNameAliases = []string{"vehicle_type_name", "vehicleTypeName", "vehicle_name", "vehicleName", "vehicle"}
	vehicleIDAliases   = []string{"vehicle_type_id", "vehicleTypeId", "vehicle_type", "vehicleType", "vehicle_id", "vehicleId"}

	nameAliases      = []string{"customer_name", "customerName", "full_name", "fullName", "name", "passenger_name", "passengerName"}
	numberAliases    = []string{"reservation_number", "reservationNumber", "voucher_code", "voucherCode", "code", "id"}
	tripTypeAliases  = []string{"trip_type", "tripType", "transfer_type", "transferType"}
	depDateAliases   = []string{"departure_date", "departureDate", "pickup_date", "pickupDate", "date"}
	depTimeAliases   = []string{"departure_time", "departureTime", "pickup_time", "pickupTime", "time"}
	retDateAliases   = []string{"return_date", "returnDate"}
	retTimeAliases   = []string{"return_time", "returnTime"}
	flightAliases    = []string{"flight_code", "flightCode", "flight_number", "flightNumber", "flight"}
	retFlightAliases = []string{"return_flight_code", "returnFlightCode", "return_flight_number", "returnFlightNumber", "return_flight", "returnFlight"}
	paxAliases       = []string{"passengers", "passenger_count", "passengerCount", "pax"}
	paxNameAliases   = []string{"passenger_names", "passengerNames"}
	extrasAliases    = []string{"extras", "extra_services", "extraServices", "selected_extras", "selectedExtras"}
	paymentAliases   = []string{"payment_status", "paymentStatus"}
	totalAliases     = []string{"total_price", "totalPrice", "total", "price", "amount"}
	discountAliases  = []string{"discount_amount", "discountAmount", "discount"}
)

// FromLegacyPayload is the compatibility shim for the voucher endpoints.
// details may be a JSON object or a JSON string containing one. Values that
// cannot be resolved are left empty and render as Placeholder.
func FromLegacyPayload(details json.RawMessage, locations, vehicleTypes []map[string]interface{}) (Data, error) {
	fields, err := decodeDetails(details)
	if err != nil {
		return Data{}, err
	}

	d := Data{
		ReservationNumber: first(fields, numberAliases),
		CustomerName:      first(fields, nameAliases),
		From:              resolveName(fields, fromNameAliases, fromIDAliases, locations),
		To:                resolveName(fields, toNameAliases, toIDAliases, locations),
		TripType:          first(fields, tripTypeAliases),
		DepartureDate:     first(fields, depDateAliases),
		DepartureTime:     first(fields, depTimeAliases),
		ReturnDate:        first(fields, retDateAliases),
		ReturnTime:        first(fields, retTimeAliases),
		FlightCode:        first(fields, flightAliases),
		ReturnFlightCode:  first(fields, retFlightAliases),
		PassengerNames:    stringList(lookup(fields, paxNameAliases)),
		Vehicle:           resolveName(fields, vehicleNameAliases, vehicleIDAliases, vehicleTypes),
		Extras:            extraList(lookup(fields, extrasAliases)),
		PaymentStatus:     first(fields, paymentAliases),
	}

	if n, err := strconv.Atoi(first(fields, paxAliases)); err == nil {
		d.Passengers = n
	}
	if v, err := strconv.ParseFloat(first(fields, totalAliases), 64); err == nil {
		d.Total = v
	}
	if v, err := strconv.ParseFloat(first(fields, discountAliases), 64); err == nil {
		d.Discount = v
	}

	return d, nil
}

func decodeDetails(raw json.RawMessage) (map[string]interface{}, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: empty", ErrMalformedDetails)
	}

	// the e-mail endpoint historically sent the object serialized into a string
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDetails, err)
		}
		raw = []byte(inner)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDetails, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: not an object", ErrMalformedDetails)
	}
	return fields, nil
}

// resolveName tries the name aliases, then looks the id aliases up in refs
func resolveName(fields map[string]interface{}, nameAliases, idAliases []string, refs []map[string]interface{}) string {
	if name := first(fields, nameAliases); name != "" && !isNumeric(name) {
		return name
	}

	ids := make([]string, 0, len(idAliases)+len(nameAliases))
	for _, key := range append(append([]string{}, idAliases...), nameAliases...) {
		if v := scalar(fields[key]); v != "" {
			ids = append(ids, v)
		}
	}
	for _, id := range ids {
		for _, ref := range refs {
			if scalar(ref["id"]) == id {
				if name := scalar(ref["name"]); name != "" {
					return name
				}
			}
		}
	}
	return ""
}

func lookup(fields map[string]interface{}, aliases []string) interface{} {
	for _, key := range aliases {
		if v, ok := fields[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func first(fields map[string]interface{}, aliases []string) string {
	for _, key := range aliases {
		if v := scalar(fields[key]); v != "" {
			return v
		}
	}
	return ""
}

func scalar(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// stringList accepts ["a","b"] or "a, b"
func stringList(v interface{}) []string {
	switch t := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, scalar(item))
		}
		return out
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		parts := strings.Split(t, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return nil
}

// extraList accepts [{"name":..,"price":..}], ["Child seat"] or "Child seat, Meet & greet"
func extraList(v interface{}) []Extra {
	items, ok := v.([]interface{})
	if !ok {
		names := stringList(v)
		out := make([]Extra, 0, len(names))
		for _, n := range names {
			out = append(out, Extra{Name: n})
		}
		return out
	}

	out := make([]Extra, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			out = append(out, Extra{Name: scalar(item)})
			continue
		}
		e := Extra{Name: first(obj, []string{"name", "title", "extra_service_name"})}
		if p, err := strconv.ParseFloat(first(obj, []string{"price", "amount"}), 64); err == nil {
			e.Price = p
		}
		out = append(out, e)
	}
	return out
}
