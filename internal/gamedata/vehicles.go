package gamedata

import "fmt"

var vehicleNames = map[int]string{
	400: "Landstalker", 401: "Bravura", 402: "Buffalo", 403: "Linerunner",
	404: "Perennial", 405: "Sentinel", 406: "Dumper", 407: "Fire Truck",
	408: "Trashmaster", 409: "Stretch", 410: "Manana", 411: "Infernus",
	412: "Voodoo", 413: "Pony", 414: "Mule", 415: "Cheetah", 416: "Ambulance",
	417: "Leviathan", 418: "Moonbeam", 419: "Esperanto", 420: "Taxi",
	421: "Washington", 422: "Bobcat", 423: "Mr. Whoopee", 424: "BF Injection",
	425: "Hunter", 426: "Premier", 427: "Enforcer", 428: "Securicar",
	429: "Banshee", 430: "Predator", 431: "Bus", 432: "Rhino", 433: "Barracks",
	434: "Hotknife", 436: "Previon", 437: "Coach", 438: "Cabbie",
	439: "Stallion", 440: "Rumpo", 441: "RC Bandit", 442: "Romero",
	443: "Packer", 444: "Monster", 445: "Admiral", 446: "Squalo",
	447: "Seasparrow", 448: "Pizzaboy", 451: "Turismo", 452: "Speeder",
	453: "Reefer", 454: "Tropic", 455: "Flatbed", 456: "Yankee",
	457: "Caddy", 458: "Solair", 461: "PCJ-600", 462: "Faggio",
	463: "Freeway", 466: "Glendale", 467: "Oceanic", 468: "Sanchez",
	469: "Sparrow", 470: "Patriot", 471: "Quad", 474: "Hermes",
	475: "Sabre", 477: "ZR-350", 478: "Walton", 479: "Regina",
	480: "Comet", 481: "BMX", 482: "Burrito", 483: "Camper",
	486: "Dozer", 487: "Maverick", 489: "Rancher", 490: "FBI Rancher",
	491: "Virgo", 492: "Greenwood", 495: "Sandking", 496: "Blista Compact",
	497: "Police Maverick", 499: "Benson", 500: "Mesa", 502: "Hotring Racer",
	506: "Super GT", 507: "Elegant", 508: "Journey", 509: "Bike",
	510: "Mountain Bike", 511: "Beagle", 512: "Cropduster", 514: "Tanker",
	515: "Roadtrain", 516: "Nebula", 517: "Majestic", 518: "Buccaneer",
	519: "Shamal", 520: "Hydra", 521: "FCR-900", 522: "NRG-500",
	523: "HPV1000", 525: "Towtruck", 526: "Fortune", 527: "Cadrona",
	529: "Willard", 530: "Forklift", 533: "Feltzer", 535: "Slamvan",
	536: "Blade", 540: "Vincent", 541: "Bullet", 542: "Clover",
	543: "Sadler", 545: "Hustler", 546: "Intruder", 547: "Primo",
	549: "Tampa", 550: "Sunrise", 551: "Merit", 552: "Utility Van",
	554: "Yosemite", 555: "Windsor", 558: "Uranus", 559: "Jester",
	560: "Sultan", 561: "Stratum", 562: "Elegy", 565: "Flash",
	566: "Tahoma", 567: "Savanna", 568: "Bandito", 571: "Kart",
	573: "Duneride", 575: "Broadway", 576: "Tornado", 579: "Huntley",
	580: "Stafford", 581: "BF-400", 582: "Newsvan", 585: "Emperor",
	586: "Wayfarer", 587: "Euros", 589: "Club", 596: "Police Car (LSPD)",
	597: "Police Car (SFPD)", 598: "Police Car (LVPD)", 599: "Police Ranger",
	600: "Picador", 601: "S.W.A.T.", 602: "Alpha", 603: "Phoenix",
}

// VehicleName resolves a vehicle model id to its display name.
func VehicleName(model int) string {
	if name, ok := vehicleNames[model]; ok {
		return name
	}
	return fmt.Sprintf("Vehicle %d", model)
}
