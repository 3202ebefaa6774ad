/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"

	"github.com/Seednode/compliments/pairing"
	"github.com/spf13/viper"
)

var defaultRoster = []string{
	"Emili Marcel Cabrera Flores",
	"Dulce Naomy Calderón Gonzalez",
	"Jennifer Estefanía Chajón Barrios",
	"Enrique Cifuentes Bauer",
	"Santiago Del Río Méndez",
	"Carlos Rafael Fernández Valdés",
	"Martin Figueroa Tavares",
	"Esteban Renato Fratta Torres",
	"María Fernanda Garcia Barrios",
	"Julian García Fernández de la Torre",
	"Andrea Michelle Lacota Martínez",
	"Maria Amalia Leclair Rodriguez",
	"Fátima Anaí López Castellanos",
	"Maria Andrea Marinelli Toruño",
	"Ana Lucía Morales Paiz",
	"Ana Lucía Muñoz Turcios",
	"Martin Leonardo Rivera Grajeda",
	"José Mariano Rodríguez Rios",
	"Ximena Santizo Murúa",
	"Isabel Siliézar Rodas",
	"Jeanne Marie Wheelock",
}

var defaultCatalog = pairing.Catalog{
	Speaker: pairing.RoleCases{
		Label: "Decir elogio",
		Cases: []pairing.BehaviorCase{
			{
				Positive: "Elogia una acción concreta y su impacto: 'Tu explicación sobre el método hizo que todo el grupo entendiera el porqué; se nota tu claridad al dar ejemplos.'",
				Negative: "Foco solo en apariencia o comentario fuera de contexto: 'Qué bien te ves' en medio de una exposición técnica.",
			},
			{
				Positive: "Destaca esfuerzo y progreso: 'Se nota que practicaste; ese avance en la resolución fue evidente.'",
				Negative: "Comparar negativamente con otros: 'Al menos tú sí...' (crea tensión).",
			},
			{
				Positive: "Relaciona con valores: 'Admiro tu persistencia al completar la tarea a pesar de las dificultades.'",
				Negative: "Elogio vago y excesivo sin explicación: 'Eres increíble' sin ejemplos.",
			},
		},
	},
	Guesser: pairing.RoleCases{
		Label: "Adivinar el cumplido",
		Cases: []pairing.BehaviorCase{
			{
				Positive: "Escucha atentamente y elige si el cumplido se centra en esfuerzo, habilidad o apariencia; argumenta tu elección.",
				Negative: "Responder impulsivamente 'incorrecto' sin razonarlo.",
			},
			{
				Positive: "Pide detalle si no está claro: '¿Te refieres a mi claridad o a mi estilo?'.",
				Negative: "Confundir el cumplido con crítica y responder a la defensiva.",
			},
			{
				Positive: "Valora intención y contexto: identifica si el cumplido busca empoderar o solo halagar superficialmente.",
				Negative: "Tomarlo como una obligación de reciprocidad inmediata.",
			},
		},
	},
}

// classroomFile is the on-disk shape of --classroom. Sections left out fall
// back to the built-in roster and catalog.
type classroomFile struct {
	Roster  []string           `mapstructure:"roster"`
	Speaker *pairing.RoleCases `mapstructure:"speaker"`
	Guesser *pairing.RoleCases `mapstructure:"guesser"`
}

func loadClassroom(path string) ([]string, pairing.Catalog, error) {
	roster, catalog := defaultRoster, defaultCatalog
	if path == "" {
		return roster, catalog, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, pairing.Catalog{}, fmt.Errorf("read classroom %s: %w", path, err)
	}

	var f classroomFile
	if err := v.Unmarshal(&f); err != nil {
		return nil, pairing.Catalog{}, fmt.Errorf("decode classroom %s: %w", path, err)
	}

	if len(f.Roster) > 0 {
		roster = f.Roster
	}
	if f.Speaker != nil {
		catalog.Speaker = *f.Speaker
	}
	if f.Guesser != nil {
		catalog.Guesser = *f.Guesser
	}

	return roster, catalog, nil
}

// newEngine builds the engine once per process from the configured
// classroom.
func newEngine(cfg *Config) (*pairing.Engine, error) {
	roster, catalog, err := loadClassroom(cfg.classroom)
	if err != nil {
		return nil, err
	}

	var opts []pairing.Option
	if cfg.strictNames {
		opts = append(opts, pairing.WithStrictNames())
	}

	e, err := pairing.New(roster, catalog, opts...)
	if err != nil {
		return nil, fmt.Errorf("classroom: %w", err)
	}

	logf(cfg, "START: Loaded classroom with %d participants", len(roster))

	return e, nil
}
