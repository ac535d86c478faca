package furniture

type victorianChair struct{}

func (victorianChair) SitOn() string { return "Sitting on a Victorian Chair." }

type victorianSofa struct{}

func (victorianSofa) LieOn() string { return "Lying on a Victorian Sofa." }

type victorianTable struct{}

func (victorianTable) Use() string { return "Using a Victorian Table." }

type modernChair struct{}

func (modernChair) SitOn() string { return "Sitting on a Modern Chair." }

type modernSofa struct{}

func (modernSofa) LieOn() string { return "Lying on a Modern Sofa." }

type modernTable struct{}

func (modernTable) Use() string { return "Using a Modern Table." }

type victorianFactory struct{}

// NewVictorian returns the Victorian family factory.
func NewVictorian() Factory { return victorianFactory{} }

func (victorianFactory) Style() Style       { return Victorian }
func (victorianFactory) CreateChair() Chair { return victorianChair{} }
func (victorianFactory) CreateSofa() Sofa   { return victorianSofa{} }
func (victorianFactory) CreateTable() Table { return victorianTable{} }

type modernFactory struct{}

// NewModern returns the Modern family factory.
func NewModern() Factory { return modernFactory{} }

func (modernFactory) Style() Style       { return Modern }
func (modernFactory) CreateChair() Chair { return modernChair{} }
func (modernFactory) CreateSofa() Sofa   { return modernSofa{} }
func (modernFactory) CreateTable() Table { return modernTable{} }
