package gamedata

// zone is an axis-aligned named map region. Zones are checked in order;
// the first hit wins, matching how the client resolves overlapping areas.
type zone struct {
	name                   string
	minX, minY, maxX, maxY float32
}

var zones = []zone{
	{"Blueberry", 19.6, -404.1, 349.6, -220.1},
	{"Montgomery", 1119.5, 119.5, 1451.4, 493.3},
	{"Dillimore", 580.7, -674.8, 861.0, -404.7},
	{"Palomino Creek", 2160.2, -149.0, 2576.9, 228.3},
	{"Red County", -172.0, -1115.5, 2997.0, 1659.6},
	{"Ganton", 2222.5, -1722.3, 2632.8, -1628.5},
	{"Idlewood", 1812.6, -1852.8, 2124.6, -1602.3},
	{"East Los Santos", 2421.0, -1628.5, 2632.8, -1454.3},
	{"Jefferson", 1996.9, -1449.6, 2056.8, -1350.7},
	{"Glen Park", 1812.6, -1449.6, 1996.9, -1350.7},
	{"Downtown Los Santos", 1463.9, -1430.8, 1724.7, -1290.8},
	{"Commerce", 1323.9, -1842.2, 1701.9, -1722.2},
	{"Pershing Square", 1440.9, -1722.3, 1583.5, -1577.5},
	{"Verona Beach", 851.4, -1804.2, 1046.1, -1577.5},
	{"Santa Maria Beach", 72.6, -2173.2, 342.6, -1684.6},
	{"Rodeo", 72.6, -1684.6, 225.1, -1544.1},
	{"Vinewood", 647.7, -1227.2, 787.4, -1118.2},
	{"Mulholland", 737.5, -768.0, 1142.2, -674.8},
	{"Los Santos International", 1249.6, -2394.3, 1852.0, -2179.2},
	{"El Corona", 1692.6, -2179.2, 1812.6, -1842.2},
	{"Willowfield", 2089.0, -2235.8, 2201.8, -2095.0},
	{"Los Santos", 44.6, -2892.9, 2997.0, -768.0},
	{"Easter Bay Airport", -1499.8, -50.0, -1242.9, 249.9},
	{"Doherty", -2270.0, -324.1, -1794.9, -222.5},
	{"Garcia", -2411.2, -222.5, -2173.0, -115.0},
	{"Downtown San Fierro", -1982.3, 744.1, -1871.7, 1274.2},
	{"Chinatown", -2274.1, 578.3, -2078.6, 744.1},
	{"Ocean Flats", -2994.4, 277.4, -2867.8, 458.4},
	{"Juniper Hill", -2533.0, 578.3, -2274.1, 968.3},
	{"San Fierro", -2997.4, -1115.5, -1213.9, 1659.6},
	{"The Strip", 2027.4, 863.2, 2087.3, 1703.2},
	{"The Four Dragons Casino", 1817.3, 863.2, 2027.3, 1083.2},
	{"Old Venturas Strip", 2162.3, 2012.1, 2685.1, 2202.7},
	{"Redsands East", 1817.3, 2011.8, 2106.7, 2202.7},
	{"Las Venturas Airport", 1236.6, 1203.2, 1457.3, 1883.1},
	{"Prickle Pine", 1534.5, 2583.2, 1848.4, 2863.2},
	{"Las Venturas", 869.4, 596.3, 2997.0, 2993.8},
	{"Bone County", -480.5, 596.3, 869.4, 2993.8},
	{"Tierra Robada", -2997.4, 1659.6, -480.5, 2993.8},
	{"Flint County", -1213.9, -2892.9, 44.6, -768.0},
	{"Whetstone", -2997.4, -2892.9, -1213.9, -1115.5},
}

// ZoneName resolves a 2D position to its map zone, defaulting to the state
// name for open country and water.
func ZoneName(x, y float32) string {
	for _, z := range zones {
		if x >= z.minX && x <= z.maxX && y >= z.minY && y <= z.maxY {
			return z.name
		}
	}
	return "San Andreas"
}
