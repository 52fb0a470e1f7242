package repositories

import "github.com/sbilibin2017/mundo-divertido/internal/models"

// DefaultPhotos is the photo catalog every store starts with.
func DefaultPhotos() []models.Photo {
	return []models.Photo{
		{
			ID:    1,
			URL:   "https://images.unsplash.com/photo-1587300003388-59208cc962cb?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Title: "Cachorrinhos Felizes",
			Alt:   "Cachorrinhos brincando no campo",
			Order: 1,
		},
		{
			ID:    2,
			URL:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Title: "Balões no Céu",
			Alt:   "Balões coloridos no céu azul",
			Order: 2,
		},
		{
			ID:    3,
			URL:   "https://images.unsplash.com/photo-1516298773066-c48f8e9bd92b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Title: "Arco-íris Mágico",
			Alt:   "Arco-íris sobre paisagem verde",
			Order: 3,
		},
		{
			ID:    4,
			URL:   "https://images.unsplash.com/photo-1516750105099-4b8a83e217ee?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Title: "Gatinho Brincalhão",
			Alt:   "Gatinho brincando com brinquedos",
			Order: 4,
		},
	}
}

// DefaultSongs is the song catalog every store starts with.
func DefaultSongs() []models.Song {
	return []models.Song{
		{ID: 1, Title: "Estrela Brilhante", Icon: "star", Color: "soft-blue", AudioURL: "/audio/estrela-brilhante.mp3", Order: 1},
		{ID: 2, Title: "Sol Dourado", Icon: "sun", Color: "lilac", AudioURL: "/audio/sol-dourado.mp3", Order: 2},
		{ID: 3, Title: "Jardim Feliz", Icon: "leaf", Color: "mint-green", AudioURL: "/audio/jardim-feliz.mp3", Order: 3},
	}
}
