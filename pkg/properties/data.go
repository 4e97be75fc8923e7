package properties

import "github.com/extramock/extramock/pkg/rooms"

// Demo dataset. Three Bengaluru properties covering each onboarding
// status, with full preview details for each.

func amenity(id, label, img, category, subcategory string) rooms.Amenity {
	return rooms.Amenity{
		AmenityID:   id,
		Label:       label,
		ImageURL:    img,
		Category:    category,
		Subcategory: subcategory,
		IsSelected:  true,
	}
}

var (
	amnAC         = amenity("AMN_101", "Air Conditioning", "https://cdn.scapia.com/amenities/ac.svg", "Comfort", "Climate Control")
	amnMiniBar    = amenity("AMN_102", "Mini Bar", "https://cdn.scapia.com/amenities/minibar.svg", "Food & Beverage", "In-Room")
	amnWiFi       = amenity("AMN_103", "Free Wi-Fi", "https://cdn.scapia.com/amenities/wifi.svg", "Connectivity", "Internet")
	amnPool       = amenity("AMN_104", "Swimming Pool", "https://cdn.scapia.com/amenities/pool.svg", "Recreation", "Outdoor")
	amnSpa        = amenity("AMN_105", "Spa & Wellness", "https://cdn.scapia.com/amenities/spa.svg", "Recreation", "Wellness")
	amnRestaurant = amenity("AMN_106", "Restaurant", "https://cdn.scapia.com/amenities/restaurant.svg", "Food & Beverage", "Dining")
	amnGym        = amenity("AMN_107", "Fitness Center", "https://cdn.scapia.com/amenities/gym.svg", "Recreation", "Fitness")
	amnParking    = amenity("AMN_108", "Parking", "https://cdn.scapia.com/amenities/parking.svg", "Convenience", "Transport")
)

var demoProperties = []Property{
	{
		HotelID:    "MMT_HTL_001234",
		Name:       "The Grand Leela Palace",
		ChainName:  "The Leela Group",
		StarRating: 5,
		Location: Location{
			City: "Bengaluru", State: "Karnataka", Country: "India",
			Address: "23, Old Airport Road, Kodihalli, Bengaluru - 560008",
		},
		Images:           []string{"https://cdn.scapia.com/hotels/MMT_HTL_001234/thumb.jpg"},
		OnboardingStatus: "not_started",
	},
	{
		HotelID:    "MMT_HTL_005678",
		Name:       "Taj MG Road",
		ChainName:  "Taj Hotels",
		StarRating: 5,
		Location: Location{
			City: "Bengaluru", State: "Karnataka", Country: "India",
			Address: "41/3, MG Road, Bengaluru - 560001",
		},
		Images:           []string{"https://cdn.scapia.com/hotels/MMT_HTL_005678/thumb.jpg"},
		OnboardingStatus: "in_progress",
	},
	{
		HotelID:    "MMT_HTL_009012",
		Name:       "Radisson Blu Atria",
		ChainName:  "Radisson Hotel Group",
		StarRating: 4,
		Location: Location{
			City: "Bengaluru", State: "Karnataka", Country: "India",
			Address: "1, Palace Road, Bengaluru - 560001",
		},
		Images:           []string{"https://cdn.scapia.com/hotels/MMT_HTL_009012/thumb.jpg"},
		OnboardingStatus: "completed",
	},
}

var demoDetails = map[string]*Detail{
	"MMT_HTL_001234": {
		HotelID:    "MMT_HTL_001234",
		Name:       "The Grand Leela Palace",
		ChainName:  "The Leela Group",
		StarRating: 5,
		Location: Location{
			City: "Bengaluru", State: "Karnataka", Country: "India",
			Address:  "23, Old Airport Road, Kodihalli, Bengaluru - 560008",
			Latitude: 12.9611, Longitude: 77.6478, Pincode: "560008",
		},
		Images: []ImageGroup{
			{Category: "exterior", Images: []string{
				"https://cdn.scapia.com/hotels/MMT_HTL_001234/ext_001.jpg",
				"https://cdn.scapia.com/hotels/MMT_HTL_001234/ext_002.jpg",
			}},
			{Category: "lobby", Images: []string{
				"https://cdn.scapia.com/hotels/MMT_HTL_001234/lob_001.jpg",
				"https://cdn.scapia.com/hotels/MMT_HTL_001234/lob_002.jpg",
			}},
			{Category: "room", Images: []string{
				"https://cdn.scapia.com/hotels/MMT_HTL_001234/rm_001.jpg",
				"https://cdn.scapia.com/hotels/MMT_HTL_001234/rm_002.jpg",
			}},
			{Category: "pool", Images: []string{
				"https://cdn.scapia.com/hotels/MMT_HTL_001234/pool_001.jpg",
				"https://cdn.scapia.com/hotels/MMT_HTL_001234/pool_002.jpg",
			}},
		},
		Amenities: []rooms.Amenity{amnAC, amnMiniBar, amnWiFi, amnPool, amnSpa},
		Rooms: []rooms.Room{
			{
				RoomID:         "rm_001",
				RoomName:       "Deluxe King Room",
				RoomSize:       rooms.Size{Value: 450, Unit: "ft"},
				RoomView:       rooms.View{ID: "RV_001", Label: "Pool View"},
				NumberOfRooms:  12,
				HasBalcony:     true,
				SmokingAllowed: false,
				Bathrooms:      rooms.Bathrooms{Count: 1, Attached: true},
				Bed:            rooms.Bed{TypeID: "BT_001", TypeLabel: "King", Count: 1},
				Occupancy:      rooms.Occupancy{BaseAdults: 2, MaxAdults: 2, MaxChildren: 1, MaxOccupancy: 3},
				Images: []rooms.Image{
					{URL: "https://cdn.scapia.com/hotels/MMT_HTL_001234/rm_001/img_001.jpg", Tag: "room", IsHero: true},
					{URL: "https://cdn.scapia.com/hotels/MMT_HTL_001234/rm_001/img_002.jpg", Tag: "bathroom"},
				},
				Amenities:          []rooms.Amenity{amnAC, amnMiniBar},
				VerificationStatus: rooms.StatusVerified,
			},
			{
				RoomID:           "rm_002",
				RoomName:         "Premium Suite",
				RoomSize:         rooms.Size{Value: 750, Unit: "ft"},
				RoomView:         rooms.View{ID: "RV_002", Label: "City View"},
				NumberOfRooms:    6,
				HasBalcony:       true,
				SmokingAllowed:   false,
				Bathrooms:        rooms.Bathrooms{Count: 2, Attached: true},
				Bed:              rooms.Bed{TypeID: "BT_001", TypeLabel: "King", Count: 1},
				ExtraBedProvided: true,
				Occupancy:        rooms.Occupancy{BaseAdults: 2, MaxAdults: 3, MaxChildren: 2, MaxOccupancy: 4},
				Images: []rooms.Image{
					{URL: "https://cdn.scapia.com/hotels/MMT_HTL_001234/rm_002/img_001.jpg", Tag: "room", IsHero: true},
					{URL: "https://cdn.scapia.com/hotels/MMT_HTL_001234/rm_002/img_002.jpg", Tag: "bathroom"},
				},
				Amenities:          []rooms.Amenity{amnAC, amnMiniBar, amnWiFi},
				VerificationStatus: rooms.StatusVerified,
			},
		},
	},
	"MMT_HTL_005678": {
		HotelID:    "MMT_HTL_005678",
		Name:       "Taj MG Road",
		ChainName:  "Taj Hotels",
		StarRating: 5,
		Location: Location{
			City: "Bengaluru", State: "Karnataka", Country: "India",
			Address:  "41/3, MG Road, Bengaluru - 560001",
			Latitude: 12.9758, Longitude: 77.6045, Pincode: "560001",
		},
		Images: []ImageGroup{
			{Category: "exterior", Images: []string{
				"https://cdn.scapia.com/hotels/MMT_HTL_005678/ext_001.jpg",
				"https://cdn.scapia.com/hotels/MMT_HTL_005678/ext_002.jpg",
			}},
			{Category: "lobby", Images: []string{
				"https://cdn.scapia.com/hotels/MMT_HTL_005678/lob_001.jpg",
			}},
			{Category: "room", Images: []string{
				"https://cdn.scapia.com/hotels/MMT_HTL_005678/rm_001.jpg",
				"https://cdn.scapia.com/hotels/MMT_HTL_005678/rm_002.jpg",
			}},
		},
		Amenities: []rooms.Amenity{amnAC, amnWiFi, amnRestaurant, amnGym},
		Rooms: []rooms.Room{
			{
				RoomID:           "rm_001",
				RoomName:         "Superior Room",
				RoomSize:         rooms.Size{Value: 350, Unit: "ft"},
				RoomView:         rooms.View{ID: "RV_003", Label: "Garden View"},
				NumberOfRooms:    20,
				Bathrooms:        rooms.Bathrooms{Count: 1, Attached: true},
				Bed:              rooms.Bed{TypeID: "BT_002", TypeLabel: "Queen", Count: 1},
				ExtraBedProvided: true,
				Occupancy:        rooms.Occupancy{BaseAdults: 2, MaxAdults: 2, MaxChildren: 1, MaxOccupancy: 3},
				Images: []rooms.Image{
					{URL: "https://cdn.scapia.com/hotels/MMT_HTL_005678/rm_001/img_001.jpg", Tag: "room", IsHero: true},
					{URL: "https://cdn.scapia.com/hotels/MMT_HTL_005678/rm_001/img_002.jpg", Tag: "bathroom"},
				},
				Amenities:          []rooms.Amenity{amnAC, amnWiFi},
				VerificationStatus: rooms.StatusVerified,
			},
		},
	},
	"MMT_HTL_009012": {
		HotelID:    "MMT_HTL_009012",
		Name:       "Radisson Blu Atria",
		ChainName:  "Radisson Hotel Group",
		StarRating: 4,
		Location: Location{
			City: "Bengaluru", State: "Karnataka", Country: "India",
			Address:  "1, Palace Road, Bengaluru - 560001",
			Latitude: 12.9850, Longitude: 77.5870, Pincode: "560001",
		},
		Images: []ImageGroup{
			{Category: "exterior", Images: []string{
				"https://cdn.scapia.com/hotels/MMT_HTL_009012/ext_001.jpg",
				"https://cdn.scapia.com/hotels/MMT_HTL_009012/ext_002.jpg",
			}},
			{Category: "lobby", Images: []string{
				"https://cdn.scapia.com/hotels/MMT_HTL_009012/lob_001.jpg",
			}},
			{Category: "room", Images: []string{
				"https://cdn.scapia.com/hotels/MMT_HTL_009012/rm_001.jpg",
			}},
		},
		Amenities: []rooms.Amenity{amnAC, amnWiFi, amnParking},
		Rooms: []rooms.Room{
			{
				RoomID:        "rm_001",
				RoomName:      "Standard Double Room",
				RoomSize:      rooms.Size{Value: 300, Unit: "ft"},
				RoomView:      rooms.View{ID: "RV_004", Label: "Street View"},
				NumberOfRooms: 30,
				Bathrooms:     rooms.Bathrooms{Count: 1, Attached: true},
				Bed:           rooms.Bed{TypeID: "BT_003", TypeLabel: "Double", Count: 2},
				Occupancy:     rooms.Occupancy{BaseAdults: 2, MaxAdults: 2, MaxChildren: 1, MaxOccupancy: 3},
				Images: []rooms.Image{
					{URL: "https://cdn.scapia.com/hotels/MMT_HTL_009012/rm_001/img_001.jpg", Tag: "room", IsHero: true},
				},
				Amenities:          []rooms.Amenity{amnAC},
				VerificationStatus: rooms.StatusPending,
			},
		},
	},
}
