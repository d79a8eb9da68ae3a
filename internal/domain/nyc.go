package domain

// NYCGroups - расстояния (мили до SoHo) по округам
var NYCGroups = []Group{
	{
		Name: "Manhattan",
		Items: []Item{
			{Name: "Chelsea", Miles: 1},
			{Name: "Tribeca", Miles: 1},
			{Name: "East Village", Miles: 1},
			{Name: "Upper East Side", Miles: 5.0},
			{Name: "Upper West Side", Miles: 4.0},
			{Name: "Harlem", Miles: 9.0},
			{Name: "Washington Heights", Miles: 8.5},
			{Name: "Inwood", Miles: 9.5},
			{Name: "Midtown", Miles: 1.0},
			{Name: "Financial District", Miles: 0.73},
			{Name: "Lower East Side", Miles: 0.8},
			{Name: "Hudson Yards", Miles: 3.0},
			{Name: "Times Square", Miles: 1.0},
			{Name: "Chinatown", Miles: 1},
			{Name: "West Village", Miles: 1},
		},
	},
	{
		Name: "Brooklyn",
		Items: []Item{
			{Name: "Williamsburg", Miles: 2.0},
			{Name: "Bushwick", Miles: 3.0},
			{Name: "Park Slope", Miles: 2.0},
			{Name: "Brooklyn Heights", Miles: 2.0},
			{Name: "Coney Island", Miles: 12.0},
			{Name: "DUMBO", Miles: 2.5},
			{Name: "Greenpoint", Miles: 3.0},
			{Name: "Sunset Park", Miles: 6.0},
			{Name: "Bay Ridge", Miles: 8.0},
		},
	},
	{
		Name: "Queens",
		Items: []Item{
			{Name: "Astoria", Miles: 5.0},
			{Name: "Long Island City", Miles: 4.0},
			{Name: "Flushing", Miles: 10.0},
			{Name: "Jackson Heights", Miles: 8.0},
			{Name: "Ridgewood", Miles: 5.0},
		},
	},
	{
		Name: "Bronx",
		Items: []Item{
			{Name: "Riverdale", Miles: 12.0},
			{Name: "Pelham Bay", Miles: 15.0},
		},
	},
	{
		Name: "Staten Island",
		Items: []Item{
			{Name: "St. George", Miles: 14.0},
			{Name: "New Dorp", Miles: 16.0},
			{Name: "Mid Island", Miles: 15.7},
			{Name: "Shore Acres", Miles: 12.0},
			{Name: "South Beach", Miles: 13.5},
			{Name: "Clove Lakes", Miles: 13.9},
		},
	},
	{
		Name: "Jersey",
		Items: []Item{
			{Name: "Jersey City", Miles: 8.5},
			{Name: "Hoboken", Miles: 7.2},
		},
	},
}

// NYCTable возвращает встроенную таблицу расстояний
func NYCTable() *DistanceTable {
	return MustDistanceTable(NYCGroups)
}
