package pets

import "time"

// IsBirthday compara solo mes y día; el año de birthday se ignora.
func IsBirthday(birthday, today time.Time) bool {
	return birthday.Month() == today.Month() && birthday.Day() == today.Day()
}

// NextBirthday devuelve el próximo cumpleaños a partir de from (inclusive si es hoy),
// a medianoche en la zona de from. time.Date normaliza el 29/02 al 01/03.
func NextBirthday(birthday, from time.Time) time.Time {
	loc := from.Location()
	y := from.Year()
	next := time.Date(y, birthday.Month(), birthday.Day(), 0, 0, 0, 0, loc)
	today := time.Date(y, from.Month(), from.Day(), 0, 0, 0, 0, loc)
	if next.Before(today) {
		next = time.Date(y+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, loc)
	}
	return next
}
