// Package memoria implementa los puertos de persistencia sobre mapas en
// memoria. Se usa en los tests de casos de uso como doble del adaptador
// PostgreSQL; guarda copias por valor para imitar la semántica de una fila.
package memoria

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/domain/repository"
)

// Store agrupa todas las colecciones en memoria bajo un mismo mutex.
type Store struct {
	mu          sync.RWMutex
	productos   map[string]entity.Producto
	proveedores map[string]entity.Proveedor
	clientes    map[string]entity.Cliente
	usuarios    map[string]entity.Usuario
	pedidos     map[string]entity.Pedido
	ventas      map[string]entity.Venta
}

// NewStore construye el almacén vacío.
func NewStore() *Store {
	return &Store{
		productos:   make(map[string]entity.Producto),
		proveedores: make(map[string]entity.Proveedor),
		clientes:    make(map[string]entity.Cliente),
		usuarios:    make(map[string]entity.Usuario),
		pedidos:     make(map[string]entity.Pedido),
		ventas:      make(map[string]entity.Venta),
	}
}

// Productos devuelve la vista ProductoRepository del almacén.
func (s *Store) Productos() repository.ProductoRepository { return (*productoRepo)(s) }

// Proveedores devuelve la vista ProveedorRepository del almacén.
func (s *Store) Proveedores() repository.ProveedorRepository { return (*proveedorRepo)(s) }

// Clientes devuelve la vista ClienteRepository del almacén.
func (s *Store) Clientes() repository.ClienteRepository { return (*clienteRepo)(s) }

// Usuarios devuelve la vista UsuarioRepository del almacén.
func (s *Store) Usuarios() repository.UsuarioRepository { return (*usuarioRepo)(s) }

// Pedidos devuelve la vista PedidoRepository del almacén.
func (s *Store) Pedidos() repository.PedidoRepository { return (*pedidoRepo)(s) }

// Ventas devuelve la vista VentaRepository del almacén.
func (s *Store) Ventas() repository.VentaRepository { return (*ventaRepo)(s) }

// ── Productos ─────────────────────────────────────────────────────────────────

type productoRepo Store

var _ repository.ProductoRepository = (*productoRepo)(nil)

func (r *productoRepo) Create(p *entity.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, otro := range r.productos {
		if otro.Codigo == p.Codigo {
			return domain.ErrDuplicate
		}
	}
	r.productos[p.ID] = *p
	return nil
}

func (r *productoRepo) GetByID(id string) (*entity.Producto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.productos[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *productoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.productos {
		if p.Codigo == codigo {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *productoRepo) Update(p *entity.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.productos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.productos[p.ID] = *p
	return nil
}

func (r *productoRepo) UpdateStock(productoID string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[productoID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	r.productos[productoID] = p
	return nil
}

func (r *productoRepo) filtrar(pred func(entity.Producto) bool) []*entity.Producto {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Producto
	for _, p := range r.productos {
		if pred(p) {
			cp := p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out
}

func (r *productoRepo) ListActivos() ([]*entity.Producto, error) {
	return r.filtrar(func(p entity.Producto) bool { return p.Activo }), nil
}

func (r *productoRepo) BuscarPorNombre(nombre string) ([]*entity.Producto, error) {
	t := strings.ToLower(nombre)
	return r.filtrar(func(p entity.Producto) bool {
		return p.Activo && strings.Contains(strings.ToLower(p.Nombre), t)
	}), nil
}

func (r *productoRepo) BuscarPorCategoria(categoria string) ([]*entity.Producto, error) {
	return r.filtrar(func(p entity.Producto) bool { return p.Activo && p.Categoria == categoria }), nil
}

func (r *productoRepo) BuscarPorLaboratorio(laboratorio string) ([]*entity.Producto, error) {
	return r.filtrar(func(p entity.Producto) bool { return p.Activo && p.Laboratorio == laboratorio }), nil
}

func (r *productoRepo) FindStockBajo() ([]*entity.Producto, error) {
	return r.filtrar(func(p entity.Producto) bool { return p.Activo && p.Stock <= p.StockMinimo }), nil
}

func (r *productoRepo) FindConStockMenorA(umbral int) ([]*entity.Producto, error) {
	return r.filtrar(func(p entity.Producto) bool { return p.Activo && p.Stock < umbral }), nil
}

func (r *productoRepo) FindVencidosAntesDe(fecha time.Time) ([]*entity.Producto, error) {
	return r.filtrar(func(p entity.Producto) bool {
		return p.Activo && p.FechaVencimiento != nil && p.FechaVencimiento.Before(fecha)
	}), nil
}

func (r *productoRepo) FindVencenEntre(desde, hasta time.Time) ([]*entity.Producto, error) {
	return r.filtrar(func(p entity.Producto) bool {
		if !p.Activo || p.FechaVencimiento == nil {
			return false
		}
		return !p.FechaVencimiento.Before(desde) && p.FechaVencimiento.Before(hasta)
	}), nil
}

func (r *productoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	// sin transacciones en memoria: equivale a GetByID
	return r.GetByID(id)
}

func (r *productoRepo) Desactivar(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Activo = false
	r.productos[id] = p
	return nil
}

// ── Proveedores ───────────────────────────────────────────────────────────────

type proveedorRepo Store

var _ repository.ProveedorRepository = (*proveedorRepo)(nil)

func (r *proveedorRepo) Create(p *entity.Proveedor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.proveedores[p.ID] = *p
	return nil
}

func (r *proveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.proveedores[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *proveedorRepo) Update(p *entity.Proveedor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.proveedores[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.proveedores[p.ID] = *p
	return nil
}

func (r *proveedorRepo) ListActivos() ([]*entity.Proveedor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Proveedor
	for _, p := range r.proveedores {
		if p.Activo {
			cp := p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Empresa < out[j].Empresa })
	return out, nil
}

func (r *proveedorRepo) Desactivar(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.proveedores[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Activo = false
	r.proveedores[id] = p
	return nil
}

// ── Clientes ──────────────────────────────────────────────────────────────────

type clienteRepo Store

var _ repository.ClienteRepository = (*clienteRepo)(nil)

func (r *clienteRepo) Create(c *entity.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, otro := range r.clientes {
		if otro.Documento == c.Documento {
			return domain.ErrDuplicate
		}
	}
	r.clientes[c.ID] = *c
	return nil
}

func (r *clienteRepo) GetByID(id string) (*entity.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clientes[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *clienteRepo) GetByDocumento(documento string) (*entity.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clientes {
		if c.Documento == documento {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *clienteRepo) Update(c *entity.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clientes[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.clientes[c.ID] = *c
	return nil
}

func (r *clienteRepo) ListActivos() ([]*entity.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Cliente
	for _, c := range r.clientes {
		if c.Activo {
			cp := c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Apellido < out[j].Apellido })
	return out, nil
}

func (r *clienteRepo) Buscar(termino string) ([]*entity.Cliente, error) {
	t := strings.ToLower(termino)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Cliente
	for _, c := range r.clientes {
		if !c.Activo {
			continue
		}
		if strings.Contains(strings.ToLower(c.Nombre), t) ||
			strings.Contains(strings.ToLower(c.Apellido), t) ||
			strings.Contains(strings.ToLower(c.Documento), t) {
			cp := c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *clienteRepo) Desactivar(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clientes[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Activo = false
	r.clientes[id] = c
	return nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

type usuarioRepo Store

var _ repository.UsuarioRepository = (*usuarioRepo)(nil)

func (r *usuarioRepo) Create(u *entity.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, otro := range r.usuarios {
		if otro.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	r.usuarios[u.ID] = *u
	return nil
}

func (r *usuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.usuarios[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *usuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.usuarios {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *usuarioRepo) Update(u *entity.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.usuarios[u.ID]; !ok {
		return domain.ErrNotFound
	}
	r.usuarios[u.ID] = *u
	return nil
}

func (r *usuarioRepo) UpdatePassword(id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.usuarios[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = passwordHash
	r.usuarios[id] = u
	return nil
}

func (r *usuarioRepo) ListAll() ([]*entity.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Usuario
	for _, u := range r.usuarios {
		cp := u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

type pedidoRepo Store

var _ repository.PedidoRepository = (*pedidoRepo)(nil)

func clonarPedido(p entity.Pedido) *entity.Pedido {
	cp := p
	cp.Detalles = append([]entity.DetallePedido(nil), p.Detalles...)
	return &cp
}

func (r *pedidoRepo) Create(p *entity.Pedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, otro := range r.pedidos {
		if otro.NumeroPedido == p.NumeroPedido {
			return domain.ErrDuplicate
		}
	}
	r.pedidos[p.ID] = *clonarPedido(*p)
	return nil
}

func (r *pedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pedidos[id]
	if !ok {
		return nil, nil
	}
	return clonarPedido(p), nil
}

func (r *pedidoRepo) GetByNumero(numero string) (*entity.Pedido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.pedidos {
		if p.NumeroPedido == numero {
			return clonarPedido(p), nil
		}
	}
	return nil, nil
}

func (r *pedidoRepo) Update(p *entity.Pedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pedidos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.pedidos[p.ID] = *clonarPedido(*p)
	return nil
}

func (r *pedidoRepo) listar(pred func(entity.Pedido) bool) []*entity.Pedido {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Pedido
	for _, p := range r.pedidos {
		if pred(p) {
			out = append(out, clonarPedido(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaPedido.After(out[j].FechaPedido) })
	return out
}

func (r *pedidoRepo) ListActivos() ([]*entity.Pedido, error) {
	return r.listar(func(p entity.Pedido) bool { return p.Activo }), nil
}

func (r *pedidoRepo) ListByEstado(estado entity.EstadoPedido) ([]*entity.Pedido, error) {
	return r.listar(func(p entity.Pedido) bool { return p.Activo && p.Estado == estado }), nil
}

func (r *pedidoRepo) ListPendientes() ([]*entity.Pedido, error) {
	return r.listar(func(p entity.Pedido) bool { return p.Activo && !p.Estado.Terminal() }), nil
}

func (r *pedidoRepo) CountByEstado(estado entity.EstadoPedido) (int, error) {
	lista, _ := r.ListByEstado(estado)
	return len(lista), nil
}

func (r *pedidoRepo) Desactivar(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pedidos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Activo = false
	r.pedidos[id] = p
	return nil
}

// ── Ventas ────────────────────────────────────────────────────────────────────

type ventaRepo Store

var _ repository.VentaRepository = (*ventaRepo)(nil)

func clonarVenta(v entity.Venta) *entity.Venta {
	cp := v
	cp.Detalles = append([]entity.DetalleVenta(nil), v.Detalles...)
	return &cp
}

func (r *ventaRepo) Create(v *entity.Venta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ventas[v.ID] = *clonarVenta(*v)
	return nil
}

func (r *ventaRepo) GetByID(id string) (*entity.Venta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.ventas[id]
	if !ok {
		return nil, nil
	}
	return clonarVenta(v), nil
}

func (r *ventaRepo) Update(v *entity.Venta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ventas[v.ID]; !ok {
		return domain.ErrNotFound
	}
	r.ventas[v.ID] = *clonarVenta(*v)
	return nil
}

func (r *ventaRepo) listar(pred func(entity.Venta) bool) []*entity.Venta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Venta
	for _, v := range r.ventas {
		if pred(v) {
			out = append(out, clonarVenta(v))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	return out
}

func (r *ventaRepo) ListActivas() ([]*entity.Venta, error) {
	return r.listar(func(v entity.Venta) bool { return v.Activo }), nil
}

func (r *ventaRepo) ListPorRango(desde, hasta time.Time) ([]*entity.Venta, error) {
	return r.listar(func(v entity.Venta) bool {
		return v.Activo && !v.Fecha.Before(desde) && v.Fecha.Before(hasta)
	}), nil
}

func (r *ventaRepo) ListPorMetodoPago(metodoPago string) ([]*entity.Venta, error) {
	return r.listar(func(v entity.Venta) bool { return v.Activo && v.MetodoPago == metodoPago }), nil
}

func (r *ventaRepo) ListUltimas(n int) ([]*entity.Venta, error) {
	todas := r.listar(func(v entity.Venta) bool { return v.Activo })
	if len(todas) > n {
		todas = todas[:n]
	}
	return todas, nil
}

func (r *ventaRepo) TotalPorRango(desde, hasta time.Time) (decimal.Decimal, error) {
	lista, _ := r.ListPorRango(desde, hasta)
	total := decimal.Zero
	for _, v := range lista {
		total = total.Add(v.Total)
	}
	return total, nil
}

func (r *ventaRepo) CountPorRango(desde, hasta time.Time) (int, error) {
	lista, _ := r.ListPorRango(desde, hasta)
	return len(lista), nil
}
