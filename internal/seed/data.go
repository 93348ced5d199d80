package seed

import "github.com/parkslookup/parks-api/pkg/db/models"

// defaultParks is the demo dataset loaded into an empty database. Codes follow
// the four-letter convention used by the public parks endpoints.
func defaultParks() []models.Park {
	return []models.Park{
		{
			ParkCode:    "dena",
			ParkName:    "Denali National Park and Preserve",
			Description: "Six million acres of wild land bisected by one ribbon of road, centered on North America's tallest peak.",
			StateCode:   "AK",
		},
		{
			ParkCode:    "glba",
			ParkName:    "Glacier Bay National Park and Preserve",
			Description: "Covers 3.3 million acres of rugged mountains, dynamic glaciers, temperate rainforest, wild coastlines and deep sheltered fjords.",
			StateCode:   "AK",
		},
		{
			ParkCode:    "chst",
			ParkName:    "Chugach State Park",
			Description: "One of the four largest state parks in the United States, reaching from Anchorage into the Chugach Mountains.",
			StateCode:   "AK",
			IsStatePark: true,
		},
		{
			ParkCode:    "mora",
			ParkName:    "Mount Rainier National Park",
			Description: "An active volcano ascending to 14,410 feet above sea level, the most glaciated peak in the contiguous United States.",
			StateCode:   "WA",
		},
		{
			ParkCode:    "olym",
			ParkName:    "Olympic National Park",
			Description: "Encompasses nearly a million acres spanning glacier-capped mountains, old-growth temperate rain forests and over 70 miles of wild coastline.",
			StateCode:   "WA",
		},
		{
			ParkCode:    "mosp",
			ParkName:    "Moran State Park",
			Description: "Over 5,000 acres on Orcas Island with five freshwater lakes and the summit of Mount Constitution.",
			StateCode:   "WA",
			IsStatePark: true,
		},
	}
}

// defaultVisitorCenters maps park codes to the centers seeded alongside. Park
// ids are resolved at load time after the parks insert.
func defaultVisitorCenters() map[string][]models.VisitorCenter {
	return map[string][]models.VisitorCenter{
		"dena": {
			{
				CenterName:      "Denali Visitor Center",
				Description:     "The park's main contact station near the entrance, with exhibits, a theater and ranger programs.",
				PhysicalAddress: "Mile 1.5 Denali Park Road, Denali Park, AK 99755",
				PhoneNumber:     "907-683-9532",
			},
			{
				CenterName:      "Eielson Visitor Center",
				Description:     "Backcountry center deep in the park with sweeping views of Denali on clear days.",
				PhysicalAddress: "Mile 66 Denali Park Road, Denali Park, AK 99755",
				PhoneNumber:     "907-683-9532",
			},
		},
		"mora": {
			{
				CenterName:      "Henry M. Jackson Memorial Visitor Center",
				Description:     "Year-round center at Paradise with exhibits on the mountain's glaciers, geology and subalpine meadows.",
				PhysicalAddress: "Paradise Road East, Ashford, WA 98304",
				MailingAddress:  "55210 238th Avenue East, Ashford, WA 98304",
				PhoneNumber:     "360-569-6571",
			},
			{
				CenterName:      "Sunrise Visitor Center",
				Description:     "Seasonal center at the highest point reachable by road in the park.",
				PhysicalAddress: "Sunrise Park Road, Ashford, WA 98304",
				PhoneNumber:     "360-663-2425",
			},
		},
		"olym": {
			{
				CenterName:      "Olympic National Park Visitor Center",
				Description:     "Gateway center in Port Angeles with a hands-on discovery room and trip-planning staff.",
				PhysicalAddress: "3002 Mount Angeles Road, Port Angeles, WA 98362",
				PhoneNumber:     "360-565-3130",
			},
		},
		"glba": {
			{
				CenterName:      "Glacier Bay Visitor Center",
				Description:     "Located upstairs in Glacier Bay Lodge at Bartlett Cove, open in the summer season.",
				PhysicalAddress: "179 Bartlett Cove Road, Gustavus, AK 99826",
				PhoneNumber:     "907-697-2661",
			},
		},
	}
}
