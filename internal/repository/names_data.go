package repository

import "github.com/aliskhannn/divine-names-bot/internal/domain/entities"

// canonicalNames is the compiled-in registry in canonical order.
var canonicalNames = []entities.Name{
	{Number: 1, Transliteration: "Ar Rahmaan", Meaning: "The Most Compassionate"},
	{Number: 2, Transliteration: "Ar Raheem", Meaning: "The Most Merciful"},
	{Number: 3, Transliteration: "Al Malik", Meaning: "The King, The Sovereign"},
	{Number: 4, Transliteration: "Al Quddoos", Meaning: "The Most Holy"},
	{Number: 5, Transliteration: "As Salaam", Meaning: "The Source of Peace"},
	{Number: 6, Transliteration: "Al Mu'min", Meaning: "The Guardian of Faith"},
	{Number: 7, Transliteration: "Al Muhaymin", Meaning: "The Protector"},
	{Number: 8, Transliteration: "Al 'Azeez", Meaning: "The Mighty"},
	{Number: 9, Transliteration: "Al Jabbaar", Meaning: "The Compeller"},
	{Number: 10, Transliteration: "Al Mutakabbir", Meaning: "The Greatest"},
	{Number: 11, Transliteration: "Al Khaaliq", Meaning: "The Creator"},
	{Number: 12, Transliteration: "Al Baari'", Meaning: "The Maker"},
	{Number: 13, Transliteration: "Al Musawwir", Meaning: "The Fashioner"},
	{Number: 14, Transliteration: "Al Ghaffaar", Meaning: "The Ever-Forgiving"},
	{Number: 15, Transliteration: "Al Qahhaar", Meaning: "The All-Prevailing"},
	{Number: 16, Transliteration: "Al Wahhaab", Meaning: "The Supreme Bestower"},
	{Number: 17, Transliteration: "Ar Razzaaq", Meaning: "The Provider"},
	{Number: 18, Transliteration: "Al Fattaah", Meaning: "The Opener"},
	{Number: 19, Transliteration: "Al 'Aleem", Meaning: "The All-Knowing"},
	{Number: 20, Transliteration: "Al Qaabid", Meaning: "The Withholder"},
	{Number: 21, Transliteration: "Al Baasit", Meaning: "The Amplifier"},
	{Number: 22, Transliteration: "Al Khaafid", Meaning: "The Reducer"},
	{Number: 23, Transliteration: "Ar Raafi'", Meaning: "The Elevator"},
	{Number: 24, Transliteration: "Al Mu'izz", Meaning: "The Honorer"},
	{Number: 25, Transliteration: "Al Mudhill", Meaning: "The Humiliator"},
	{Number: 26, Transliteration: "As Samee'", Meaning: "The All-Hearing"},
	{Number: 27, Transliteration: "Al Baseer", Meaning: "The All-Seeing"},
	{Number: 28, Transliteration: "Al Hakam", Meaning: "The Impartial Judge"},
	{Number: 29, Transliteration: "Al 'Adl", Meaning: "The Utterly Just"},
	{Number: 30, Transliteration: "Al Lateef", Meaning: "The Subtle One"},
	{Number: 31, Transliteration: "Al Khabeer", Meaning: "The All-Acquainted"},
	{Number: 32, Transliteration: "Al Haleem", Meaning: "The Most Forbearing"},
	{Number: 33, Transliteration: "Al 'Azeem", Meaning: "The Magnificent One"},
	{Number: 34, Transliteration: "Al Ghafoor", Meaning: "The Most Forgiving"},
	{Number: 35, Transliteration: "Ash Shakoor", Meaning: "The Most Appreciative"},
	{Number: 36, Transliteration: "Al 'Aliyy", Meaning: "The Most High"},
	{Number: 37, Transliteration: "Al Kabeer", Meaning: "The Most Great"},
	{Number: 38, Transliteration: "Al Hafeez", Meaning: "The Preserver"},
	{Number: 39, Transliteration: "Al Muqeet", Meaning: "The Nourisher"},
	{Number: 40, Transliteration: "Al Haseeb", Meaning: "The Reckoner"},
	{Number: 41, Transliteration: "Al Jaleel", Meaning: "The Majestic"},
	{Number: 42, Transliteration: "Al Kareem", Meaning: "The Most Generous"},
	{Number: 43, Transliteration: "Ar Raqeeb", Meaning: "The Observer"},
	{Number: 44, Transliteration: "Al Mujeeb", Meaning: "The Responsive"},
	{Number: 45, Transliteration: "Al Waasi'", Meaning: "The Boundless"},
	{Number: 46, Transliteration: "Al Hakeem", Meaning: "The All Wise"},
	{Number: 47, Transliteration: "Al Wadood", Meaning: "The Most Loving"},
	{Number: 48, Transliteration: "Al Majeed", Meaning: "The Glorious"},
	{Number: 49, Transliteration: "Al Baa'ith", Meaning: "The Resurrector"},
	{Number: 50, Transliteration: "Ash Shaheed", Meaning: "The Witness"},
	{Number: 51, Transliteration: "Al Haqq", Meaning: "The Absolute Truth"},
	{Number: 52, Transliteration: "Al Wakeel", Meaning: "The Trustee"},
	{Number: 53, Transliteration: "Al Qawiyy", Meaning: "The Most Strong"},
	{Number: 54, Transliteration: "Al Mateen", Meaning: "The Steadfast"},
	{Number: 55, Transliteration: "Al Waliyy", Meaning: "The Protecting Associate"},
	{Number: 56, Transliteration: "Al Hameed", Meaning: "The Praiseworthy"},
	{Number: 57, Transliteration: "Al Muhsee", Meaning: "The Counter"},
	{Number: 58, Transliteration: "Al Mubdee", Meaning: "The Originator"},
	{Number: 59, Transliteration: "Al Mu'eed", Meaning: "The Restorer"},
	{Number: 60, Transliteration: "Al Muhyee", Meaning: "The Giver of Life"},
	{Number: 61, Transliteration: "Al Mumeet", Meaning: "The Bringer of Death"},
	{Number: 62, Transliteration: "Al Hayy", Meaning: "The Ever-Living"},
	{Number: 63, Transliteration: "Al Qayyoom", Meaning: "The Self-Subsisting"},
	{Number: 64, Transliteration: "Al Waajid", Meaning: "The Perceiver"},
	{Number: 65, Transliteration: "Al Maajid", Meaning: "The Illustrious"},
	{Number: 66, Transliteration: "Al Waahid", Meaning: "The One"},
	{Number: 67, Transliteration: "Al Ahad", Meaning: "The Unique"},
	{Number: 68, Transliteration: "As Samad", Meaning: "The Eternal"},
	{Number: 69, Transliteration: "Al Qaadir", Meaning: "The Capable"},
	{Number: 70, Transliteration: "Al Muqtadir", Meaning: "The Omnipotent"},
	{Number: 71, Transliteration: "Al Muqaddim", Meaning: "The Expediter"},
	{Number: 72, Transliteration: "Al Muakhkhir", Meaning: "The Delayer"},
	{Number: 73, Transliteration: "Al Awwal", Meaning: "The First"},
	{Number: 74, Transliteration: "Al Aakhir", Meaning: "The Last"},
	{Number: 75, Transliteration: "Adh Dhaahir", Meaning: "The Manifest"},
	{Number: 76, Transliteration: "Al Baatin", Meaning: "The Hidden One"},
	{Number: 77, Transliteration: "Al Waali", Meaning: "The Patron"},
	{Number: 78, Transliteration: "Al Muta'aali", Meaning: "The Supremely Exalted"},
	{Number: 79, Transliteration: "Al Barr", Meaning: "The Source of Goodness"},
	{Number: 80, Transliteration: "At Tawwaab", Meaning: "The Ever-Pardoning"},
	{Number: 81, Transliteration: "Al Muntaqim", Meaning: "The Avenger"},
	{Number: 82, Transliteration: "Al 'Afuww", Meaning: "The Pardoner"},
	{Number: 83, Transliteration: "Ar Raoof", Meaning: "The Most Kind"},
	{Number: 84, Transliteration: "Maalik-ul-Mulk", Meaning: "The Owner of the Dominion"},
	{Number: 85, Transliteration: "Dhul-Jalaali wal-Ikraam", Meaning: "Possessor of Glory and Honor"},
	{Number: 86, Transliteration: "Al Muqsit", Meaning: "The Requiter"},
	{Number: 87, Transliteration: "Al Jaami'", Meaning: "The Gatherer"},
	{Number: 88, Transliteration: "Al Ghaniyy", Meaning: "The Rich"},
	{Number: 89, Transliteration: "Al Mughniyy", Meaning: "The Enricher"},
	{Number: 90, Transliteration: "Al Maani'", Meaning: "The Preventer"},
	{Number: 91, Transliteration: "Ad Dhaar", Meaning: "The Distresser"},
	{Number: 92, Transliteration: "An Naafi'", Meaning: "The Benefactor"},
	{Number: 93, Transliteration: "An Noor", Meaning: "The Light"},
	{Number: 94, Transliteration: "Al Haadi", Meaning: "The Guide"},
	{Number: 95, Transliteration: "Al Badee'", Meaning: "The Incomparable Originator"},
	{Number: 96, Transliteration: "Al Baaqi", Meaning: "The Everlasting"},
	{Number: 97, Transliteration: "Al Waarith", Meaning: "The Inheritor"},
	{Number: 98, Transliteration: "Ar Rasheed", Meaning: "The Infallible Teacher"},
	{Number: 99, Transliteration: "As Saboor", Meaning: "The Patient"},
}
