package cards

// filmCatalog is the shared finite item pool for the films variant. Every
// card draws from this list without replacement across its own cells.
var filmCatalog = []string{
	// Action
	"The Dark Knight", "Mad Max: Fury Road", "John Wick", "Die Hard", "Terminator 2",
	"The Matrix", "Gladiator", "Heat", "Casino Royale", "Mission Impossible",

	// Drama
	"The Godfather", "Shawshank Redemption", "Schindler's List", "Forrest Gump", "Goodfellas",
	"Pulp Fiction", "The Departed", "There Will Be Blood", "No Country for Old Men", "Taxi Driver",

	// Comedy
	"The Grand Budapest Hotel", "Superbad", "Anchorman", "The Hangover", "Borat",
	"Tropic Thunder", "Wedding Crashers", "Step Brothers", "Zoolander", "Dumb and Dumber",

	// Horror
	"The Exorcist", "Halloween", "A Nightmare on Elm Street", "The Shining", "Psycho",
	"Scream", "Get Out", "Hereditary", "The Conjuring", "It Follows",

	// Sci-fi
	"Blade Runner", "Alien", "Star Wars", "Interstellar", "Inception",
	"2001: A Space Odyssey", "The Thing", "Arrival", "Ex Machina", "Minority Report",

	// Romance
	"Casablanca", "The Notebook", "Titanic", "When Harry Met Sally", "Pretty Woman",
	"La La Land", "Eternal Sunshine", "Before Sunset", "Ghost", "Dirty Dancing",

	// Thriller
	"Seven", "Silence of the Lambs", "Zodiac", "Gone Girl", "Shutter Island",
	"The Prestige", "Memento", "North by Northwest", "Vertigo", "Rear Window",

	// Animation
	"Toy Story", "The Lion King", "Finding Nemo", "Spirited Away", "Up",
	"WALL-E", "Inside Out", "Coco", "Frozen", "Moana",

	// War
	"Saving Private Ryan", "Apocalypse Now", "Full Metal Jacket", "Platoon", "Black Hawk Down",
	"Hacksaw Ridge", "1917", "Dunkirk", "We Were Soldiers", "Born on the Fourth of July",
}
