// Package gamedata carries the static lookup tables of the game world:
// weapon names and damage, vehicle model names, map zone names and the
// optional object-name file.
package gamedata

import "fmt"

type weaponInfo struct {
	name   string
	damage float32
}

var weapons = map[int]weaponInfo{
	0:  {"Fist", 5},
	1:  {"Brass Knuckles", 5},
	2:  {"Golf Club", 8},
	3:  {"Nightstick", 8},
	4:  {"Knife", 10},
	5:  {"Baseball Bat", 8},
	6:  {"Shovel", 8},
	7:  {"Pool Cue", 8},
	8:  {"Katana", 12},
	9:  {"Chainsaw", 25},
	10: {"Purple Dildo", 5},
	11: {"Dildo", 5},
	12: {"Vibrator", 5},
	13: {"Silver Vibrator", 5},
	14: {"Flowers", 2},
	15: {"Cane", 5},
	16: {"Grenade", 82},
	17: {"Tear Gas", 0},
	18: {"Molotov Cocktail", 25},
	22: {"9mm", 8},
	23: {"Silenced 9mm", 13},
	24: {"Desert Eagle", 46},
	25: {"Shotgun", 49},
	26: {"Sawnoff Shotgun", 49},
	27: {"Combat Shotgun", 39},
	28: {"Micro SMG", 6},
	29: {"MP5", 8},
	30: {"AK-47", 9},
	31: {"M4", 9},
	32: {"Tec-9", 6},
	33: {"Country Rifle", 24},
	34: {"Sniper Rifle", 41},
	35: {"RPG", 82},
	36: {"HS Rocket", 82},
	37: {"Flamethrower", 1},
	38: {"Minigun", 46},
	39: {"Satchel Charge", 82},
	40: {"Detonator", 0},
	41: {"Spraycan", 1},
	42: {"Fire Extinguisher", 1},
	43: {"Camera", 0},
	44: {"Night Vision Goggles", 0},
	45: {"Thermal Goggles", 0},
	46: {"Parachute", 0},
	49: {"Vehicle Collision", 10},
	50: {"Helicopter Blades", 99},
	51: {"Explosion", 82},
	53: {"Drowning", 5},
	54: {"Fall Damage", 15},
}

// WeaponName resolves a weapon id to its display name.
func WeaponName(id int) string {
	if w, ok := weapons[id]; ok {
		return w.name
	}
	return fmt.Sprintf("Weapon %d", id)
}

// WeaponDamage returns the base damage a weapon deals per hit.
func WeaponDamage(id int) float32 {
	if w, ok := weapons[id]; ok {
		return w.damage
	}
	return 10
}
