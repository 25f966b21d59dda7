package ecs

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	TotalEntityCount int
	TableCount       int
	SingletonCount   int
	TableBreakdown   []TableStats
	SingletonTypes   []string
}

// TableStats describes the table holding one component kind.
type TableStats struct {
	ComponentType string
	RecordCount   int
}

// CollectStats walks the storage and reports entity, table and singleton counts.
// Tables that were created but are now empty are still listed.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		TotalEntityCount: len(s.order),
		TableCount:       len(s.tableOrder),
		SingletonCount:   len(s.singletonOrder),
		TableBreakdown:   make([]TableStats, 0, len(s.tableOrder)),
		SingletonTypes:   make([]string, 0, len(s.singletonOrder)),
	}

	for _, table := range s.tableOrder {
		stats.TableBreakdown = append(stats.TableBreakdown, TableStats{
			ComponentType: table.Type().String(),
			RecordCount:   table.Len(),
		})
	}

	for _, t := range s.singletonOrder {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}

	return stats
}
