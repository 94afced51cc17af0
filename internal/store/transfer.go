package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ecapdevilla/barber/internal/model"
)

// Export serializa el documento completo como respaldo descargable. Devuelve
// el nombre de archivo con la fecha de hoy y el contenido JSON.
func (s *Store) Export(ctx context.Context) (string, []byte, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return "", nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("codificando respaldo: %w", err)
	}
	filename := fmt.Sprintf("backup-barberia-%s.json", s.today())
	log.Info().Str("filename", filename).Int("bytes", len(data)).Msg("respaldo exportado")
	return filename, data, nil
}

// Import reemplaza el documento almacenado entero por el respaldo dado. Si el
// JSON no parsea, el documento existente queda intacto y se devuelve el error
// de parseo; no hay fusión parcial.
func (s *Store) Import(ctx context.Context, data []byte) error {
	var doc model.Documento
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("el respaldo no es un documento válido: %w", err)
	}
	doc.Normalize()
	if err := s.save(ctx, &doc); err != nil {
		return err
	}
	log.Info().Int("clientes", len(doc.Clientes)).Int("ventas", len(doc.Ventas)).Msg("respaldo importado")
	return nil
}

// AddHistoricalData concatena clientes y servicios realizados tal cual
// vienen: sin reasignar ids y sin propagar efectos secundarios. Los
// acumuladores de los clientes referenciados NO se recalculan. Es la válvula
// de escape para cargar datos históricos en bloque.
func (s *Store) AddHistoricalData(ctx context.Context, clientes []model.Cliente, servicios []model.ServicioRealizado) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	doc.Clientes = append(doc.Clientes, clientes...)
	doc.ServiciosRealizados = append(doc.ServiciosRealizados, servicios...)
	if err := s.save(ctx, doc); err != nil {
		return err
	}
	log.Info().Int("clientes", len(clientes)).Int("servicios", len(servicios)).Msg("datos históricos agregados")
	return nil
}
